// Package forms holds the typed inputs accepted by the list and item endpoints
// and turns binding failures into per-field messages for re-rendering.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kutbudev/listkeeper/pkg/models"
)

// FormKey collects errors that do not belong to a single field.
const FormKey = "_form"

var registerOnce sync.Once

// Register installs the custom validation tags on gin's validator engine.
// It is safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", notBlank)
	})
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// ListForm is the input for creating or editing a list.
type ListForm struct {
	Name string `form:"name" json:"name" binding:"required,notblank,max=50"`
	Desc string `form:"desc" json:"description" binding:"required,notblank,max=500"`
}

// ListFormFrom pre-fills a form from a stored list.
func ListFormFrom(l *models.List) ListForm {
	return ListForm{Name: l.Name, Desc: l.Description}
}

// ToList maps the form onto a new list entity.
func (f ListForm) ToList() *models.List {
	return &models.List{Name: f.Name, Description: f.Desc}
}

func (f *ListForm) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.Desc = strings.TrimSpace(f.Desc)
}

// ItemForm is the input for adding an item to a list.
type ItemForm struct {
	Item string `form:"item" json:"text" binding:"required,notblank,max=250"`
}

func (f *ItemForm) trim() {
	f.Item = strings.TrimSpace(f.Item)
}

// FieldErrors maps a form field name to a user-facing message.
type FieldErrors map[string]string

// AddError attaches a message to field, keeping the first one reported.
func (fe FieldErrors) AddError(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

// Has reports whether field has an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Error renders every message in a stable order for JSON responses and logs.
func (fe FieldErrors) Error() string {
	keys := []string{FormKey, "name", "desc", "item"}
	var parts []string
	seen := map[string]bool{}
	for _, k := range keys {
		if msg, ok := fe[k]; ok {
			parts = append(parts, k+": "+msg)
			seen[k] = true
		}
	}
	for k, msg := range fe {
		if !seen[k] {
			parts = append(parts, k+": "+msg)
		}
	}
	return strings.Join(parts, "; ")
}

// BindList binds and validates a ListForm from the request body.
// The returned FieldErrors is nil when the input is valid.
func BindList(c *gin.Context, b binding.Binding) (ListForm, FieldErrors) {
	Register()
	var f ListForm
	if err := c.ShouldBindWith(&f, b); err != nil {
		return f, fieldErrors(err, f)
	}
	f.trim()
	return f, nil
}

// BindItem binds and validates an ItemForm from the request body.
func BindItem(c *gin.Context, b binding.Binding) (ItemForm, FieldErrors) {
	Register()
	var f ItemForm
	if err := c.ShouldBindWith(&f, b); err != nil {
		return f, fieldErrors(err, f)
	}
	f.trim()
	return f, nil
}

// fieldErrors converts a binding error into per-field messages keyed by the
// form tag of the failing struct field.
func fieldErrors(err error, form any) FieldErrors {
	out := FieldErrors{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.AddError(FormKey, "The submitted form could not be read.")
		return out
	}

	t := reflect.TypeOf(form)
	for _, fe := range verrs {
		key := fe.StructField()
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if tag := sf.Tag.Get("form"); tag != "" {
				key = tag
			}
		}
		out.AddError(key, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	default:
		return "Invalid value."
	}
}
