package forms

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/kutbudev/listkeeper/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formContext(t *testing.T, values url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func jsonContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c
}

func TestBindList_Valid(t *testing.T) {
	c := formContext(t, url.Values{"name": {"  Groceries "}, "desc": {"Weekly shop"}})

	f, errs := BindList(c, binding.Form)
	assert.Nil(t, errs)
	assert.Equal(t, "Groceries", f.Name)
	assert.Equal(t, "Weekly shop", f.Desc)

	l := f.ToList()
	assert.Equal(t, "Groceries", l.Name)
	assert.Equal(t, "Weekly shop", l.Description)
}

func TestBindList_Missing(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		want   []string
	}{
		{"both missing", url.Values{}, []string{"name", "desc"}},
		{"blank name", url.Values{"name": {"   "}, "desc": {"x"}}, []string{"name"}},
		{"missing desc", url.Values{"name": {"x"}}, []string{"desc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := BindList(formContext(t, tt.values), binding.Form)
			require.NotNil(t, errs)
			assert.Len(t, errs, len(tt.want))
			for _, field := range tt.want {
				assert.True(t, errs.Has(field), "expected error on %s", field)
				assert.Equal(t, "This field is required.", errs[field])
			}
		})
	}
}

func TestBindList_TooLong(t *testing.T) {
	c := formContext(t, url.Values{"name": {strings.Repeat("n", 51)}, "desc": {"ok"}})

	_, errs := BindList(c, binding.Form)
	require.NotNil(t, errs)
	assert.Equal(t, "Must be at most 50 characters.", errs["name"])
}

func TestBindList_JSON(t *testing.T) {
	c := jsonContext(t, `{"name":"Chores","description":"House"}`)

	f, errs := BindList(c, binding.JSON)
	assert.Nil(t, errs)
	assert.Equal(t, "Chores", f.Name)
	assert.Equal(t, "House", f.Desc)
}

func TestBindList_MalformedJSON(t *testing.T) {
	_, errs := BindList(jsonContext(t, `{"name":`), binding.JSON)
	require.NotNil(t, errs)
	assert.True(t, errs.Has(FormKey))
}

func TestBindItem(t *testing.T) {
	f, errs := BindItem(formContext(t, url.Values{"item": {" Milk "}}), binding.Form)
	assert.Nil(t, errs)
	assert.Equal(t, "Milk", f.Item)

	_, errs = BindItem(formContext(t, url.Values{"item": {""}}), binding.Form)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("item"))

	_, errs = BindItem(formContext(t, url.Values{"item": {strings.Repeat("x", 251)}}), binding.Form)
	require.NotNil(t, errs)
	assert.Equal(t, "Must be at most 250 characters.", errs["item"])
}

func TestListFormConversions(t *testing.T) {
	l := &models.List{ID: 3, Name: "Old", Description: "old desc"}
	assert.Equal(t, ListForm{Name: "Old", Desc: "old desc"}, ListFormFrom(l))

	created := ListForm{Name: "New", Desc: "new desc"}.ToList()
	assert.Zero(t, created.ID)
	assert.Equal(t, "New", created.Name)
	assert.Equal(t, "new desc", created.Description)
}

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{}
	fe.AddError("name", "first")
	fe.AddError("name", "second")
	fe.AddError(FormKey, "general")

	assert.Equal(t, "first", fe["name"])
	assert.Equal(t, "_form: general; name: first", fe.Error())
}
