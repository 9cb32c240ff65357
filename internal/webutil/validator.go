package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"
	"unicode"

	"spelling_trainer/internal/model"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans は既定 (英語) のトランスレータです。
var Trans ut.Translator

var uni *ut.UniversalTranslator

// 日本語メッセージ用のフィールド名
var fieldNameTranslations = map[string]string{
	"username":    "ユーザー名",
	"email":       "メールアドレス",
	"password":    "パスワード",
	"token":       "トークン",
	"text":        "単語",
	"description": "説明",
	"isCorrect":   "回答の正誤",
	"typed":       "入力",
}

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	// JSONタグからフィールド名を取得する
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 単語の綴りは空白を含まない
	if err := Validator.RegisterValidation("nowhitespace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
	}); err != nil {
		log.Fatal(err)
	}

	english := en.New()
	uni = ut.New(english, english, ja.New())

	Trans, _ = uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}
	registerMessages(Trans, map[string]string{
		"required":     "{0} is required.",
		"nowhitespace": "{0} must not contain whitespace.",
		"min":          "{0} must be at least {1} characters.",
		"max":          "{0} must be at most {1} characters.",
	}, false)

	jaTrans, _ := uni.GetTranslator("ja")
	if err := ja_translations.RegisterDefaultTranslations(Validator, jaTrans); err != nil {
		log.Fatal(err)
	}
	registerMessages(jaTrans, map[string]string{
		"required":     "{0}は必須項目です。",
		"nowhitespace": "{0}に空白は使えません。",
		"email":        "{0}は有効なメールアドレス形式ではありません。",
		"min":          "{0}は{1}文字以上で入力してください。",
		"max":          "{0}は{1}文字以内で入力してください。",
	}, true)
}

// registerMessages はタグごとのメッセージを登録します。
// localizeField が true ならフィールド名を fieldNameTranslations で置き換えます。
func registerMessages(trans ut.Translator, messages map[string]string, localizeField bool) {
	for tag, msg := range messages {
		tag, msg := tag, msg
		err := Validator.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			if localizeField {
				if name, ok := fieldNameTranslations[fieldName]; ok {
					fieldName = name
				}
			}
			t, _ := ut.T(tag, fieldName, fe.Param())
			return t
		})
		if err != nil {
			log.Fatal(err)
		}
	}
}

// TranslatorFor は Accept-Language ヘッダーに合うトランスレータを返します。
// 該当が無ければ英語です。
func TranslatorFor(acceptLanguage string) ut.Translator {
	var locales []string
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		// "ja-JP" -> "ja"
		locales = append(locales, strings.ToLower(strings.SplitN(tag, "-", 2)[0]))
	}
	if len(locales) == 0 {
		return Trans
	}
	trans, _ := uni.FindTranslator(locales...)
	return trans
}

// ValidateStruct は構造体を検証し、失敗時は英語メッセージの AppError を返します
func ValidateStruct(s interface{}) error {
	return ValidateStructWith(s, Trans)
}

// ValidateStructWith は trans でメッセージを翻訳する ValidateStruct です
func ValidateStructWith(s interface{}, trans ut.Translator) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return NewValidationError(verrs, trans)
	}
	return model.NewAppError("VALIDATION_ERROR", "Invalid request.", "", errors.Join(model.ErrInvalidInput, err))
}

// NewValidationError はバリデーションエラーを1つの AppError にまとめます
func NewValidationError(errs validator.ValidationErrors, trans ut.Translator) *model.AppError {
	fields := make([]string, 0, len(errs))
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field())
		messages = append(messages, fe.Translate(trans))
	}
	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, " "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
