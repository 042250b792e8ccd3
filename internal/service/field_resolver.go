package service

import (
	"context"
	"fmt"
	"strconv"

	"oneplace/translation/internal/i18n"
	"oneplace/translation/internal/model"
	"oneplace/translation/internal/repository"
)

// FieldValueKind tags the variant a FieldValue carries.
type FieldValueKind int

const (
	ValueText FieldValueKind = iota
	ValueOption
	ValueOptions
)

// FieldValue is the resolved value of one dynamic field: a scalar for
// text-like fields, a single option for select, an ordered option list
// for multiselect.
type FieldValue struct {
	Kind    FieldValueKind
	Text    string
	Option  *model.TagOption
	Options []model.TagOption
}

// JSON returns the wire shape of the value: string, {id,label} or
// [{id,label}]. A select with no selection yields nil.
func (v FieldValue) JSON() any {
	switch v.Kind {
	case ValueOption:
		if v.Option == nil {
			return nil
		}
		return *v.Option
	case ValueOptions:
		return v.Options
	default:
		return v.Text
	}
}

// FieldResolver is the single place field-type semantics live. Both
// the listing/API formatter and the save path dispatch through it so
// the two can never diverge.
type FieldResolver struct {
	tags       repository.TagRepository
	translator *i18n.Translator
}

func NewFieldResolver(tags repository.TagRepository, translator *i18n.Translator) *FieldResolver {
	return &FieldResolver{tags: tags, translator: translator}
}

// Resolve extracts the display value of field from rec. Scalar values
// are passed through the display translator for locale. The second
// return is false for field types this entity does not carry; that is
// a no-op, not an error, since descriptors are externally authored.
func (r *FieldResolver) Resolve(ctx context.Context, field model.FormField, rec model.Translation, locale string) (FieldValue, bool, error) {
	switch field.Type {
	case model.FieldText, model.FieldDate, model.FieldTextarea:
		raw, ok := rec.TextValue(field.Key)
		if !ok {
			return FieldValue{}, false, nil
		}
		return FieldValue{Kind: ValueText, Text: r.translate(locale, raw)}, true, nil

	case model.FieldSelect:
		ref := rec.SelectRef(field.Key)
		if ref == nil {
			return FieldValue{}, false, nil
		}
		if *ref == nil {
			return FieldValue{Kind: ValueOption}, true, nil
		}
		et, err := r.tags.GetAssociation(ctx, **ref)
		if err != nil {
			return FieldValue{}, false, fmt.Errorf("resolve select field %q: %w", field.Key, err)
		}
		if et == nil {
			return FieldValue{Kind: ValueOption}, true, nil
		}
		opt := model.TagOption{ID: et.ID, Label: r.translate(locale, et.DisplayLabel())}
		return FieldValue{Kind: ValueOption, Option: &opt}, true, nil

	case model.FieldMultiselect:
		selected, err := r.tags.ListSelected(ctx, rec.ID, field.Key)
		if err != nil {
			return FieldValue{}, false, fmt.Errorf("resolve multiselect field %q: %w", field.Key, err)
		}
		opts := make([]model.TagOption, 0, len(selected))
		for _, et := range selected {
			opts = append(opts, model.TagOption{ID: et.ID, Label: r.translate(locale, et.DisplayLabel())})
		}
		return FieldValue{Kind: ValueOptions, Options: opts}, true, nil

	default:
		return FieldValue{}, false, nil
	}
}

// RawValue is Resolve without display translation, used by the
// selector listing where labels are shown untranslated.
func (r *FieldResolver) RawValue(ctx context.Context, field model.FormField, rec model.Translation) (string, error) {
	switch field.Type {
	case model.FieldText, model.FieldDate, model.FieldTextarea:
		raw, _ := rec.TextValue(field.Key)
		return raw, nil
	case model.FieldSelect:
		ref := rec.SelectRef(field.Key)
		if ref == nil || *ref == nil {
			return "", nil
		}
		et, err := r.tags.GetAssociation(ctx, **ref)
		if err != nil {
			return "", fmt.Errorf("resolve select field %q: %w", field.Key, err)
		}
		if et == nil {
			return "", nil
		}
		return et.DisplayLabel(), nil
	default:
		return "", nil
	}
}

// Apply writes a submitted scalar or select value onto rec. Returns
// false for field types that do not store onto the record itself
// (multiselect goes through ApplySelected) or that this entity does
// not carry.
func (r *FieldResolver) Apply(field model.FormField, raw string, rec *model.Translation) (bool, error) {
	switch field.Type {
	case model.FieldText, model.FieldDate, model.FieldTextarea:
		return rec.SetTextValue(field.Key, raw), nil

	case model.FieldSelect:
		ref := rec.SelectRef(field.Key)
		if ref == nil {
			return false, nil
		}
		if raw == "" {
			*ref = nil
			return true, nil
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return false, fmt.Errorf("%w: select field %q wants an id, got %q", ErrInvalid, field.Key, raw)
		}
		*ref = &id
		return true, nil

	default:
		return false, nil
	}
}

// ApplySelected replaces the stored multiselect selection of field for
// the given record with ids, keeping their order.
func (r *FieldResolver) ApplySelected(ctx context.Context, field model.FormField, translationID int64, ids []int64) error {
	if field.Type != model.FieldMultiselect {
		return nil
	}
	return r.tags.ReplaceSelected(ctx, translationID, field.Key, ids)
}

func (r *FieldResolver) translate(locale, s string) string {
	if r.translator == nil {
		return s
	}
	return r.translator.Translate(locale, s)
}
