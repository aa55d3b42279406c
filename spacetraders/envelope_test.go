package spacetraders

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeDataVariant(t *testing.T) {
	envelope := Envelope[AgentData]{}
	err := json.Unmarshal([]byte(`{"data":{"accountId":"a1","symbol":"TESTAGENT","headquarters":"X1-DF55-A1","credits":150000}}`), &envelope)
	require.NoError(t, err)

	require.NotNil(t, envelope.Data)
	assert.Nil(t, envelope.Error)
	assert.Equal(t, AgentData{AccountID: "a1", Symbol: "TESTAGENT", Headquarters: "X1-DF55-A1", Credits: 150000}, *envelope.Data)
}

func TestEnvelopeErrorVariant(t *testing.T) {
	cases := map[string]string{
		"wrapped":      `{"error":{"message":"Agent symbol already exists","code":4001,"data":{"agentSymbol":"TESTAGENT"}}}`,
		"bare":         `{"message":"Agent symbol already exists","code":4001,"data":{"agentSymbol":"TESTAGENT"}}`,
		"wrapped null": `{"error":{"message":"Agent symbol already exists","code":4001,"data":null},"data":null}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			envelope := Envelope[AgentData]{}
			require.NoError(t, json.Unmarshal([]byte(body), &envelope))

			assert.Nil(t, envelope.Data)
			require.NotNil(t, envelope.Error)
			assert.Equal(t, "Agent symbol already exists", envelope.Error.Message)
			assert.Equal(t, 4001, envelope.Error.Code)
		})
	}
}

func TestEnvelopeErrorDataIsLooselyTyped(t *testing.T) {
	envelope := Envelope[AgentData]{}
	body := `{"error":{"message":"bad","code":422,"data":{"symbol":["too short"],"retryAfter":1.5,"nested":{"ok":true}}}}`
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))

	require.NotNil(t, envelope.Error)
	assert.Equal(t, []any{"too short"}, envelope.Error.Data["symbol"])
	assert.Equal(t, 1.5, envelope.Error.Data["retryAfter"])
	assert.Equal(t, map[string]any{"ok": true}, envelope.Error.Data["nested"])
}

func TestEnvelopeDecodeFailures(t *testing.T) {
	cases := map[string]string{
		"invalid json":       `{this is invalid json}`,
		"neither shape":      `{"status":"ok"}`,
		"null data":          `{"data":null}`,
		"both variants":      `{"data":{"symbol":"A"},"error":{"message":"m","code":1}}`,
		"wrong payload type": `{"data":{"credits":"lots"}}`,
		"error without code": `{"error":{"message":"m"}}`,
		"not an object":      `[1,2,3]`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			envelope := Envelope[AgentData]{}
			err := json.Unmarshal([]byte(body), &envelope)
			require.Error(t, err)
			if name != "invalid json" {
				assert.True(t, errors.Is(err, UnableToDecodeResponseError))
			}
		})
	}
}
