package pdf

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// newConfiguration returns the pdfcpu configuration shared by every
// operation. Relaxed validation keeps slightly malformed uploads usable.
func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}
