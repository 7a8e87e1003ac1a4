package rekuest

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/salesboard/backend/internal/pkg/apierr"
	"github.com/salesboard/backend/internal/util"
)

var (
	Validate = util.NewValidator()

	Translator ut.Translator
)

func init() {
	locale := en.New()
	Translator, _ = ut.New(locale, locale).GetTranslator("en")

	if err := enTranslations.RegisterDefaultTranslations(Validate, Translator); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	err := Validate.RegisterTranslation("fiscalquarter", Translator, func(ut ut.Translator) error {
		return ut.Add("fiscalquarter", "{0} must be a fiscal quarter formatted as YYYY-QN", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("fiscalquarter", fe.Field())
		return t
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not register translation for function fiscalquarter")
	}

	err = Validate.RegisterTranslation("caseinsensitiveoneof", Translator, func(ut ut.Translator) error {
		return nil
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("oneof", fe.Field(), fe.Param())
		return t
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not register translation for function caseinsensitiveoneof")
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func translate(ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))

	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Field(),
			Violation: fe.Tag(),
			Message:   fe.Translate(Translator),
		})
	}

	return trans
}

func validateStruct(s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(errs)
	}
	return nil
}

// ValidQuery parses the query string of ctx into dest and validates it using
// the validator singleton. dest shall always be a pointer to a struct.
func ValidQuery(ctx *fiber.Ctx, dest any) error {
	if err := ctx.QueryParser(dest); err != nil {
		return apierr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(dest)
}

func ValidStruct(dest any) error {
	if err := validateStruct(dest); err != nil {
		return apierr.NewInvalidViolations(err)
	}

	return nil
}
