package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/kutbudev/listkeeper/internal/forms"
	"github.com/kutbudev/listkeeper/pkg/models"
)

const duplicateNameMsg = "A list with this name already exists."

// listURL is the page showing one list.
func listURL(id uint) string {
	return fmt.Sprintf("/list?id=%d", id)
}

// renderError shows the error page with status.
func renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error.tmpl", gin.H{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": msg,
	})
}

// renderFault logs err and shows a generic failure page.
func renderFault(c *gin.Context, err error) {
	logFault(c, err)
	renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
}

// queryID reads a required positive integer query parameter. It renders a
// 400 page and returns false when the parameter is missing or malformed.
func queryID(c *gin.Context, key string) (uint, bool) {
	raw := c.Query(key)
	if raw == "" {
		renderError(c, http.StatusBadRequest, fmt.Sprintf("Missing %q parameter.", key))
		return 0, false
	}
	id, ok := parseUint(raw)
	if !ok {
		renderError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %q parameter.", key))
		return 0, false
	}
	return id, true
}

// loadList fetches the list named by ?id= or renders the matching error page.
func (h *Handler) loadList(c *gin.Context) (*models.List, bool) {
	id, ok := queryID(c, "id")
	if !ok {
		return nil, false
	}
	list, err := h.lists.Get(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			renderError(c, http.StatusNotFound, "That list does not exist.")
		} else {
			renderFault(c, err)
		}
		return nil, false
	}
	return list, true
}

// Index renders every list.
func (h *Handler) Index(c *gin.Context) {
	lists, err := h.lists.All(c.Request.Context())
	if err != nil {
		renderFault(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Title": "My To-Do Lists",
		"Lists": lists,
	})
}

func renderList(c *gin.Context, status int, list *models.List, form forms.ItemForm, errs forms.FieldErrors) {
	c.HTML(status, "list.tmpl", gin.H{
		"Title":   list.Name,
		"List":    list,
		"Form":    form,
		"Errors":  errs,
		"MaxItem": models.ItemTextMaxLen,
	})
}

// ShowList renders one list with its items and the add-item form.
func (h *Handler) ShowList(c *gin.Context) {
	list, ok := h.loadList(c)
	if !ok {
		return
	}
	renderList(c, http.StatusOK, list, forms.ItemForm{}, nil)
}

// AddItem validates the item form and adds it to the list.
func (h *Handler) AddItem(c *gin.Context) {
	list, ok := h.loadList(c)
	if !ok {
		return
	}

	form, errs := forms.BindItem(c, binding.FormPost)
	if errs != nil {
		renderList(c, http.StatusUnprocessableEntity, list, form, errs)
		return
	}

	if _, err := h.lists.AddItem(c.Request.Context(), list.ID, form.Item); err != nil {
		if isNotFound(err) {
			renderError(c, http.StatusNotFound, "That list does not exist.")
			return
		}
		renderFault(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, listURL(list.ID))
}

func renderListForm(c *gin.Context, status int, title, action string, form forms.ListForm, errs forms.FieldErrors) {
	c.HTML(status, "form.tmpl", gin.H{
		"Title":   title,
		"Action":  action,
		"Form":    form,
		"Errors":  errs,
		"MaxName": models.ListNameMaxLen,
		"MaxDesc": models.ListDescriptionMaxLen,
	})
}

// NewList renders an empty list form.
func (h *Handler) NewList(c *gin.Context) {
	renderListForm(c, http.StatusOK, "Add a new list", "/add_list", forms.ListForm{}, nil)
}

// CreateList validates the list form and stores a new list.
func (h *Handler) CreateList(c *gin.Context) {
	const title, action = "Add a new list", "/add_list"

	form, errs := forms.BindList(c, binding.FormPost)
	if errs != nil {
		renderListForm(c, http.StatusUnprocessableEntity, title, action, form, errs)
		return
	}

	if err := h.lists.Create(c.Request.Context(), form.ToList()); err != nil {
		if isDuplicate(err) {
			errs = forms.FieldErrors{}
			errs.AddError("name", duplicateNameMsg)
			renderListForm(c, http.StatusUnprocessableEntity, title, action, form, errs)
			return
		}
		renderFault(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// EditList renders the list form pre-filled with the stored values.
func (h *Handler) EditList(c *gin.Context) {
	list, ok := h.loadList(c)
	if !ok {
		return
	}
	action := fmt.Sprintf("/edit_list?id=%d", list.ID)
	renderListForm(c, http.StatusOK, "Edit list", action, forms.ListFormFrom(list), nil)
}

// UpdateList validates the list form and updates the list's fields.
func (h *Handler) UpdateList(c *gin.Context) {
	list, ok := h.loadList(c)
	if !ok {
		return
	}
	id := list.ID
	action := fmt.Sprintf("/edit_list?id=%d", id)

	form, errs := forms.BindList(c, binding.FormPost)
	if errs != nil {
		renderListForm(c, http.StatusUnprocessableEntity, "Edit list", action, form, errs)
		return
	}

	if _, err := h.lists.Update(c.Request.Context(), id, form.Name, form.Desc); err != nil {
		switch {
		case isNotFound(err):
			renderError(c, http.StatusNotFound, "That list does not exist.")
		case isDuplicate(err):
			errs = forms.FieldErrors{}
			errs.AddError("name", duplicateNameMsg)
			renderListForm(c, http.StatusUnprocessableEntity, "Edit list", action, form, errs)
		default:
			renderFault(c, err)
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// ConfirmDeleteList asks before deleting; GET never mutates.
func (h *Handler) ConfirmDeleteList(c *gin.Context) {
	list, ok := h.loadList(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "confirm.tmpl", gin.H{
		"Title":   "Delete list",
		"Message": fmt.Sprintf("Delete the list %q and its %d item(s)?", list.Name, len(list.Items)),
		"Action":  fmt.Sprintf("/delete_list?id=%d", list.ID),
		"Cancel":  "/",
	})
}

// DeleteList deletes the list and all of its items.
func (h *Handler) DeleteList(c *gin.Context) {
	id, ok := queryID(c, "id")
	if !ok {
		return
	}
	if err := h.lists.Delete(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			renderError(c, http.StatusNotFound, "That list does not exist.")
			return
		}
		renderFault(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// ConfirmDeleteItem asks before deleting an item.
func (h *Handler) ConfirmDeleteItem(c *gin.Context) {
	listID, ok := queryID(c, "id")
	if !ok {
		return
	}
	itemID, ok := queryID(c, "item_id")
	if !ok {
		return
	}
	item, err := h.lists.GetItem(c.Request.Context(), listID, itemID)
	if err != nil {
		if isNotFound(err) {
			renderError(c, http.StatusNotFound, "That item does not exist.")
			return
		}
		renderFault(c, err)
		return
	}
	c.HTML(http.StatusOK, "confirm.tmpl", gin.H{
		"Title":   "Delete item",
		"Message": fmt.Sprintf("Delete the item %q?", item.Text),
		"Action":  fmt.Sprintf("/delete_item?id=%d&item_id=%d", listID, itemID),
		"Cancel":  listURL(listID),
	})
}

// DeleteItem deletes one item and returns to its list.
func (h *Handler) DeleteItem(c *gin.Context) {
	listID, ok := queryID(c, "id")
	if !ok {
		return
	}
	itemID, ok := queryID(c, "item_id")
	if !ok {
		return
	}
	if err := h.lists.DeleteItem(c.Request.Context(), listID, itemID); err != nil {
		if isNotFound(err) {
			renderError(c, http.StatusNotFound, "That item does not exist.")
			return
		}
		renderFault(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, listURL(listID))
}

// NotFound renders the 404 page for unknown routes.
func (h *Handler) NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, "Page not found.")
}

// MethodNotAllowed renders the 405 page.
func (h *Handler) MethodNotAllowed(c *gin.Context) {
	renderError(c, http.StatusMethodNotAllowed, "Method not allowed.")
}
