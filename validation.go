package logging

import (
	"sync"

	smerrors "github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validateSettings(settings Settings) error {
	const op smerrors.Op = "logging.validateSettings"

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(settings); err != nil {
		return smerrors.New(op).Err(kindError(ErrInvalidSettings, err)).Msg(errMsgConfigInvalid)
	}

	return nil
}
