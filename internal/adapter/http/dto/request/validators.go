package request

import (
	"fmt"
	"sync"

	"ndaje_storefront/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags to gin's validator. Safe to
// call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("reject_reason", validateRejectReason)
	})
	return err
}

func validateRejectReason(fl validator.FieldLevel) bool {
	return entities.RejectReason(fl.Field().String()).Valid()
}
