package unexported

import "formbind/internal/analyze/testdata/unexported/base"

//formbind:driver
type Form struct {
	base.Base
}
