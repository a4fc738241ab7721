package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Backend names.
const (
	BackendGoChart = "gochart"
	BackendGonum   = "gonum"
)

// Output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Options selects the renderer and the output image.
type Options struct {
	Backend string `validate:"oneof=gochart gonum"`
	Format  string `validate:"oneof=png svg"`
	Width   int    `validate:"min=320,max=4096"`
	Height  int    `validate:"min=240,max=4096"`
	// Hints stamps a one-line caption onto PNG output.
	Hints bool
}

// DefaultOptions renders PNGs with go-chart at the default chart size.
func DefaultOptions() Options {
	w, h := ChartDimensions(0)
	return Options{Backend: BackendGoChart, Format: FormatPNG, Width: w, Height: h}
}

var validate = validator.New()

// Validate checks that the options name a known backend/format and a sane size.
func (o Options) Validate() error {
	return describeValidation(validate.Struct(o))
}

// ValidateStruct runs the shared validator over any tagged struct.
func ValidateStruct(v interface{}) error {
	return describeValidation(validate.Struct(v))
}

func describeValidation(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s=%v must be one of [%s]", strings.ToLower(fe.Field()), fe.Value(), fe.Param()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s=%v violates %s=%s", strings.ToLower(fe.Field()), fe.Value(), fe.Tag(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid options: %s", strings.Join(msgs, "; "))
}

// ChartDimensions applies the width/height clamp rules used for charts.
// A non-positive width selects the default size; height follows a 3:2 aspect ratio.
func ChartDimensions(rawW int) (int, int) {
	w := rawW
	if w <= 0 {
		w = 960
	}
	if w < 320 {
		w = 320
	}
	if w > 4096 {
		w = 4096
	}
	h := int(float32(w) * 0.66)
	if h < 240 {
		h = 240
	}
	if h > 2700 {
		h = 2700
	}
	return w, h
}

// Ext is the file extension for the format.
func (o Options) Ext() string { return "." + o.Format }
