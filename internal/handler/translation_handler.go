package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"oneplace/translation/internal/config"
	"oneplace/translation/internal/i18n"
	"oneplace/translation/internal/logger"
	"oneplace/translation/internal/model"
	"oneplace/translation/internal/repository"
	"oneplace/translation/internal/service"
)

type TranslationHandler struct {
	service    service.TranslationService
	catalogs   service.CatalogService
	resolver   *service.FieldResolver
	fields     repository.FormFieldRepository
	translator *i18n.Translator
}

func NewTranslationHandler(
	svc service.TranslationService,
	catalogs service.CatalogService,
	resolver *service.FieldResolver,
	fields repository.FormFieldRepository,
	translator *i18n.Translator,
) *TranslationHandler {
	return &TranslationHandler{
		service:    svc,
		catalogs:   catalogs,
		resolver:   resolver,
		fields:     fields,
		translator: translator,
	}
}

// RegisterAPIRoutes registers the JSON API under the api group.
func (h *TranslationHandler) RegisterAPIRoutes(g *echo.Group) {
	g.GET("/translation", h.List)
	g.GET("/translation/:id", h.Get)
	g.POST("/translation", h.Create)
	g.PUT("/translation/:id", h.Update)
}

// RegisterWebRoutes registers the routes backing the admin UI screens.
func (h *TranslationHandler) RegisterWebRoutes(g *echo.Group) {
	g.GET("/translation", h.Index)
	g.GET("/translation/view/:id", h.View)
	g.POST("/translation/add", h.Create)
	g.POST("/translation/edit/:id", h.Update)
}

// List returns all translations, either as full records or as
// id/text pairs for selector widgets.
// @Summary List translations
// @Description List translation entities, as full records (listmode=entity) or selector pairs
// @Tags translation
// @Produce json
// @Param listmode query string false "entity for full records, anything else for selector pairs"
// @Param listlabel query string false "form field used as the selector label" default(label)
// @Param lang query string false "display locale" default(en_US)
// @Success 200 {object} listResponse
// @Failure 400 {object} listErrorResponse
// @Router /translation [get]
func (h *TranslationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	entityMode := c.QueryParam("listmode") == "entity"

	listLabel := c.QueryParam("listlabel")
	if listLabel == "" {
		listLabel = "label"
	}

	lang := h.translator.Resolve(c.QueryParam("lang"))

	fields, byKey, err := h.formFields(ctx)
	if err != nil {
		return listError(c, http.StatusInternalServerError, "internal error")
	}

	// Only schema fields may serve as list labels.
	labelField, ok := byKey[listLabel]
	if !ok {
		return listError(c, http.StatusBadRequest, "invalid list label")
	}

	records, err := h.service.List(ctx, nil)
	if err != nil {
		c.Logger().Error(err)
		return listError(c, http.StatusInternalServerError, "internal error")
	}

	results := make([]any, 0, len(records))
	for _, rec := range records {
		if !entityMode {
			text, err := h.resolver.RawValue(ctx, labelField, rec)
			if err != nil {
				c.Logger().Error(err)
				return listError(c, http.StatusInternalServerError, "internal error")
			}
			results = append(results, map[string]any{
				"id":   strconv.FormatInt(rec.ID, 10),
				"text": text,
			})
			continue
		}

		item, err := h.entityItem(ctx, fields, rec, lang)
		if err != nil {
			c.Logger().Error(err)
			return listError(c, http.StatusInternalServerError, "internal error")
		}
		results = append(results, item)
	}

	return c.JSON(http.StatusOK, listResponse{
		State:      "success",
		Results:    results,
		Pagination: pagination{More: false},
	})
}

// Get returns a single translation.
// @Summary Get a translation
// @Tags translation
// @Produce json
// @Param id path int true "Translation ID"
// @Success 200 {object} itemResponse
// @Failure 404 {object} itemResponse
// @Router /translation/{id} [get]
func (h *TranslationHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return itemError(c, http.StatusNotFound, "Translation not found")
	}

	ctx := c.Request().Context()
	rec, err := h.service.Get(ctx, id)
	if err != nil {
		return writeServiceError(c, err, "Translation not found")
	}

	item, err := h.recordItem(ctx, rec, h.translator.Resolve(c.QueryParam("lang")))
	if err != nil {
		c.Logger().Error(err)
		return itemError(c, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, itemResponse{State: "success", Message: "Translation found", Item: item})
}

// Create saves a new translation and regenerates the catalogs.
// @Summary Create a translation
// @Tags translation
// @Accept json
// @Produce json
// @Param payload body map[string]any true "field values keyed by form field"
// @Success 201 {object} itemResponse
// @Failure 400 {object} itemResponse
// @Router /translation [post]
func (h *TranslationHandler) Create(c echo.Context) error {
	return h.save(c, nil)
}

// Update saves an existing translation and regenerates the catalogs.
// @Summary Update a translation
// @Tags translation
// @Accept json
// @Produce json
// @Param id path int true "Translation ID"
// @Param payload body map[string]any true "field values keyed by form field"
// @Success 200 {object} itemResponse
// @Failure 404 {object} itemResponse
// @Router /translation/{id} [put]
func (h *TranslationHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return itemError(c, http.StatusNotFound, "Translation not found")
	}
	return h.save(c, &id)
}

func (h *TranslationHandler) save(c echo.Context, id *int64) error {
	ctx := c.Request().Context()

	var payload map[string]any
	if err := c.Bind(&payload); err != nil {
		return itemError(c, http.StatusBadRequest, "invalid request")
	}
	if _, ok := payload["label"]; !ok {
		return itemError(c, http.StatusBadRequest, "label is required")
	}

	var rec model.Translation
	if id != nil {
		existing, err := h.service.Get(ctx, *id)
		if err != nil {
			return writeServiceError(c, err, "Translation not found")
		}
		rec = existing
	}

	fields, _, err := h.formFields(ctx)
	if err != nil {
		return itemError(c, http.StatusInternalServerError, "internal error")
	}

	// Scalar and select values are applied before the save; the
	// multiselect linking rows need the persisted id and follow after.
	var multiselects []model.FormField
	for _, field := range fields {
		raw, ok := payload[field.Key]
		if !ok {
			continue
		}
		if field.Type == model.FieldMultiselect {
			multiselects = append(multiselects, field)
			continue
		}
		if _, err := h.resolver.Apply(field, stringValue(raw), &rec); err != nil {
			return writeServiceError(c, err, "Translation not found")
		}
	}

	savedID, err := h.service.Save(ctx, rec)
	if err != nil {
		return writeServiceError(c, err, "Translation not found")
	}

	for _, field := range multiselects {
		if err := h.resolver.ApplySelected(ctx, field, savedID, idList(payload[field.Key])); err != nil {
			c.Logger().Error(err)
			return itemError(c, http.StatusInternalServerError, "internal error")
		}
	}

	// Catalog generation is best-effort: the record is committed and
	// stays committed even when writing catalog files fails.
	genCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()
	if err := h.catalogs.GenerateAll(genCtx); err != nil {
		logger.Error("catalog regeneration after save failed",
			"module", "translation",
			"action", "save",
			"resource", "catalog",
			"result", "failed",
			"translation_id", savedID,
			"error", err,
		)
	}

	saved, err := h.service.Get(ctx, savedID)
	if err != nil {
		return writeServiceError(c, err, "Translation not found")
	}
	item, err := h.recordItem(ctx, saved, h.translator.Resolve(c.QueryParam("lang")))
	if err != nil {
		c.Logger().Error(err)
		return itemError(c, http.StatusInternalServerError, "internal error")
	}

	status := http.StatusOK
	message := "Translation successfully saved"
	if id == nil {
		status = http.StatusCreated
		message = "Translation successfully created"
	}
	return c.JSON(status, itemResponse{State: "success", Message: message, Item: item})
}

// Index backs the paginated admin list screen.
// @Summary Paginated translation list
// @Tags translation
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} pageResponse
// @Router /translation [get]
func (h *TranslationHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := h.service.ListPage(ctx, nil, parsePageParam(c))
	if err != nil {
		c.Logger().Error(err)
		return itemError(c, http.StatusInternalServerError, "internal error")
	}

	lang := h.translator.Resolve(c.QueryParam("lang"))
	items := make([]any, 0, len(page.Items))
	for _, rec := range page.Items {
		item, err := h.recordItem(ctx, rec, lang)
		if err != nil {
			c.Logger().Error(err)
			return itemError(c, http.StatusInternalServerError, "internal error")
		}
		items = append(items, item)
	}

	return c.JSON(http.StatusOK, pageResponse{
		State:      "success",
		Items:      items,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	})
}

// View backs the read-only detail screen.
// @Summary View a translation
// @Tags translation
// @Produce json
// @Param id path int true "Translation ID"
// @Success 200 {object} itemResponse
// @Failure 404 {object} itemResponse
// @Router /translation/view/{id} [get]
func (h *TranslationHandler) View(c echo.Context) error {
	return h.Get(c)
}

func (h *TranslationHandler) formFields(ctx context.Context) ([]model.FormField, map[string]model.FormField, error) {
	fields, err := h.fields.ListByForm(ctx, config.SingleForm)
	if err != nil {
		return nil, nil, err
	}
	byKey := make(map[string]model.FormField, len(fields))
	for _, f := range fields {
		byKey[f.Key] = f
	}
	return fields, byKey, nil
}

// entityItem renders one record as its resolved dynamic fields, the
// shape listmode=entity clients consume.
func (h *TranslationHandler) entityItem(ctx context.Context, fields []model.FormField, rec model.Translation, lang string) (map[string]any, error) {
	item := map[string]any{
		"id": strconv.FormatInt(rec.ID, 10),
	}
	for _, field := range fields {
		value, ok, err := h.resolver.Resolve(ctx, field, rec, lang)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		// An unset select is omitted rather than sent as null.
		if value.Kind == service.ValueOption && value.Option == nil {
			continue
		}
		item[field.Key] = value.JSON()
	}
	return item, nil
}

// recordItem is entityItem plus audit metadata, used for single-item
// responses.
func (h *TranslationHandler) recordItem(ctx context.Context, rec model.Translation, lang string) (map[string]any, error) {
	fields, _, err := h.formFields(ctx)
	if err != nil {
		return nil, err
	}
	item, err := h.entityItem(ctx, fields, rec, lang)
	if err != nil {
		return nil, err
	}
	item["createdBy"] = strconv.FormatInt(rec.CreatedBy, 10)
	item["createdDate"] = rec.CreatedDate.UTC().Format(time.RFC3339)
	item["modifiedBy"] = strconv.FormatInt(rec.ModifiedBy, 10)
	item["modifiedDate"] = rec.ModifiedDate.UTC().Format(time.RFC3339)
	return item, nil
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatInt(int64(t), 10)
	case nil:
		return ""
	default:
		return ""
	}
}

func idList(v any) []int64 {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if s := stringValue(item); s != "" {
			if id, err := strconv.ParseInt(s, 10, 64); err == nil {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
