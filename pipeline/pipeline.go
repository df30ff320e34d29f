package pipeline

import (
	"context"
	"strconv"

	"github.com/inkmath/inkmath/expr"
	"github.com/inkmath/inkmath/ink"
	"github.com/inkmath/inkmath/log"
	"github.com/inkmath/inkmath/recognize"
	"github.com/inkmath/inkmath/segment"
)

// Output is the result of one full recognition pass.
type Output struct {
	Expression    string             `json:"expression"`
	RawExpression string             `json:"rawExpression"`
	Result        *float64           `json:"result"`
	Characters    []recognize.Result `json:"characters"`
	Valid         bool               `json:"valid"`
}

// Caption formats the output as a single caption line, e.g. "2+2 = 4".
// Safe on a nil receiver so callers can pass an absent last result.
func (o *Output) Caption() string {
	if o == nil || o.Expression == "" {
		return ""
	}
	if o.Result == nil {
		return o.Expression
	}
	return o.Expression + " = " + strconv.FormatFloat(*o.Result, 'f', -1, 64)
}

// Pipeline runs segmentation, recognition, parsing and evaluation over a
// stroke list.
type Pipeline struct {
	recognizer *recognize.Recognizer
}

// New builds a pipeline around a recognizer.
func New(recognizer *recognize.Recognizer) *Pipeline {
	return &Pipeline{recognizer: recognizer}
}

// RecognizeAll recognizes the whole stroke list as one expression. With
// zero strokes it returns an empty invalid output without touching the
// classifier. The numeric result is set only for valid expressions.
func (p *Pipeline) RecognizeAll(ctx context.Context, strokes []ink.Stroke) Output {
	out := Output{Characters: []recognize.Result{}}
	if len(strokes) == 0 {
		return out
	}

	groups := segment.Group(strokes)
	log.Trace.Printf("segmented %d strokes into %d groups", len(strokes), len(groups))

	results := make([]recognize.Result, 0, len(groups))
	for _, g := range groups {
		results = append(results, p.recognizer.Recognize(ctx, g))
	}

	parsed := expr.Parse(results)
	log.Trace.Printf("parsed %q into %q (valid=%v)", parsed.Raw, parsed.Normalized, parsed.Valid)

	out.Expression = parsed.Normalized
	out.RawExpression = parsed.Raw
	out.Characters = parsed.Characters
	out.Valid = parsed.Valid

	if parsed.Valid {
		v := expr.Round10(expr.Evaluate(parsed.Normalized))
		out.Result = &v
	}

	return out
}
