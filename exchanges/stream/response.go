package stream

import (
	"errors"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/thrasher-corp/binance-connector/encoding/json"
	"github.com/thrasher-corp/binance-connector/exchanges/apierror"
)

// requestFrame is the outbound shape shared by API calls and stream control
// frames
type requestFrame struct {
	ID     string          `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// response is a decoded response frame
type response struct {
	Result     []byte
	RateLimits []RateLimit
}

// parseResponse applies the success rule to a response frame: a result must
// be present, no error may be present and any status must be 2xx. Everything
// else is a domain failure carrying the frame's status.
func parseResponse(frame []byte) (*response, error) {
	var status int64
	if s, err := jsonparser.GetInt(frame, "status"); err == nil {
		status = s
	} else if !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, apierror.Encoding(err)
	}

	result, _, _, resultErr := jsonparser.Get(frame, "result")
	errBody, _, _, errorErr := jsonparser.Get(frame, "error")
	if errorErr != nil {
		// Stream control errors may report code and msg at the top level
		if _, _, _, err := jsonparser.Get(frame, "code"); err == nil {
			errBody, errorErr = frame, nil
		}
	}

	if resultErr == nil && errorErr != nil && (status == 0 || (status >= 200 && status < 300)) {
		resp := &response{Result: result}
		if limits, _, _, err := jsonparser.Get(frame, "rateLimits"); err == nil {
			if err := json.Unmarshal(limits, &resp.RateLimits); err != nil {
				return nil, apierror.Encoding(err)
			}
		}
		return resp, nil
	}

	if errorErr != nil {
		errBody = nil
	}
	return nil, apierror.FromBody(strconv.FormatInt(status, 10), errBody)
}

// decodeResult unmarshals a result into out. A nil out or a null result is
// accepted without decoding.
func decodeResult(result []byte, out any) error {
	if out == nil || len(result) == 0 || string(result) == "null" {
		return nil
	}
	if err := json.Unmarshal(result, out); err != nil {
		return apierror.Encoding(err)
	}
	return nil
}
