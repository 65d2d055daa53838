package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/kutbudev/listkeeper/internal/forms"
)

func paramID(c *gin.Context, key string) (uint, bool) {
	id, ok := parseUint(c.Param(key))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + key})
		return 0, false
	}
	return id, true
}

func validationFailed(c *gin.Context, errs forms.FieldErrors) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": errs})
}

// respondStoreError maps repository errors onto JSON responses.
func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case isNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case isDuplicate(err):
		c.JSON(http.StatusConflict, gin.H{"error": duplicateNameMsg, "fields": forms.FieldErrors{"name": duplicateNameMsg}})
	default:
		logFault(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// ListListsJSON retrieves all lists.
func (h *Handler) ListListsJSON(c *gin.Context) {
	lists, err := h.lists.All(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, lists)
}

// CreateListJSON creates a new list.
func (h *Handler) CreateListJSON(c *gin.Context) {
	form, errs := forms.BindList(c, binding.JSON)
	if errs != nil {
		validationFailed(c, errs)
		return
	}

	list := form.ToList()
	if err := h.lists.Create(c.Request.Context(), list); err != nil {
		respondStoreError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, list)
}

// GetListJSON retrieves a single list with its items.
func (h *Handler) GetListJSON(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	list, err := h.lists.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "List not found")
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateListJSON replaces a list's name and description.
func (h *Handler) UpdateListJSON(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	form, errs := forms.BindList(c, binding.JSON)
	if errs != nil {
		validationFailed(c, errs)
		return
	}
	list, err := h.lists.Update(c.Request.Context(), id, form.Name, form.Desc)
	if err != nil {
		respondStoreError(c, err, "List not found")
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeleteListJSON deletes a list and its items.
func (h *Handler) DeleteListJSON(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.lists.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "List not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "List deleted successfully"})
}

// AddItemJSON adds an item to a list.
func (h *Handler) AddItemJSON(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	form, errs := forms.BindItem(c, binding.JSON)
	if errs != nil {
		validationFailed(c, errs)
		return
	}
	item, err := h.lists.AddItem(c.Request.Context(), id, form.Item)
	if err != nil {
		respondStoreError(c, err, "List not found")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DeleteItemJSON deletes one item of a list.
func (h *Handler) DeleteItemJSON(c *gin.Context) {
	listID, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "item_id")
	if !ok {
		return
	}
	if err := h.lists.DeleteItem(c.Request.Context(), listID, itemID); err != nil {
		respondStoreError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
