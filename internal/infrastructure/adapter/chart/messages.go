package chart

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
)

// Reply content types
const (
	ContentTypePNG  = "image/png"
	ContentTypeJSON = "application/json"
)

// Error envelope codes
const (
	codeEmpty   = "empty"
	codeInvalid = "invalid"
	codeFailed  = "failed"
)

// Request is the RPC message: a method name plus keyword parameters
type Request struct {
	Method string `json:"method"`
	Params Params `json:"params"`
}

// Params are the keyword parameters of a chart call
type Params struct {
	Values    []int64  `json:"values"`
	Labels    []string `json:"labels"`
	ChartType string   `json:"chart_type"`
	Title     string   `json:"title,omitempty"`
}

// ErrorReply is sent instead of PNG bytes when rendering fails
type ErrorReply struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// NewRequest converts a domain chart request to its wire form
func NewRequest(req entity.ChartRequest) Request {
	return Request{
		Method: req.Method,
		Params: Params{
			Values:    req.Values,
			Labels:    req.Labels,
			ChartType: string(req.ChartType),
			Title:     req.Title,
		},
	}
}

// ToJSON converts the message to JSON bytes
func (r Request) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// RequestFromJSON decodes and validates a request body
func RequestFromJSON(data []byte) (entity.ChartRequest, error) {
	var msg Request
	if err := json.Unmarshal(data, &msg); err != nil {
		return entity.ChartRequest{}, fmt.Errorf("%w: malformed chart request: %s", errs.ErrInvalidRequest, err.Error())
	}

	chartType, err := entity.ParseChartType(msg.Params.ChartType)
	if err != nil {
		return entity.ChartRequest{}, err
	}

	switch msg.Method {
	case entity.ChartMethodCategory:
	case entity.ChartMethodPeriod:
		chartType = entity.ChartBarplot
	default:
		return entity.ChartRequest{}, fmt.Errorf("%w: unknown chart method %q", errs.ErrInvalidRequest, msg.Method)
	}

	req := entity.ChartRequest{
		Method:    msg.Method,
		Values:    msg.Params.Values,
		Labels:    msg.Params.Labels,
		ChartType: chartType,
		Title:     msg.Params.Title,
	}
	return req, req.Validate()
}

// newErrorReply builds the JSON envelope for a rendering failure
func newErrorReply(err error) []byte {
	code := codeFailed
	switch {
	case errors.Is(err, errs.ErrEmptyChart):
		code = codeEmpty
	case errs.IsInvalidInputError(err):
		code = codeInvalid
	}
	body, _ := json.Marshal(ErrorReply{Code: code, Error: err.Error()})
	return body
}

// replyError converts an error envelope back to a domain error
func replyError(body []byte) error {
	var reply ErrorReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return fmt.Errorf("%w: undecodable worker reply", errs.ErrChartUnavailable)
	}
	switch reply.Code {
	case codeEmpty:
		return errs.ErrEmptyChart
	case codeInvalid:
		return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, reply.Error)
	default:
		return fmt.Errorf("%w: %s", errs.ErrChartUnavailable, reply.Error)
	}
}
