/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package crud

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/asgardeo/rosteradmin/internal/system/error/serviceerror"
	"github.com/asgardeo/rosteradmin/internal/system/i18n"
	"github.com/asgardeo/rosteradmin/internal/system/log"
)

const formLoggerComponentName = "EntityForm"

var validate = validator.New()

// FormOptions configures a Form.
type FormOptions[T Entity] struct {
	Notifier Notifier
	Options  OptionSource
	// Done is the transition performed after a successful submission, such as closing
	// the modal or navigating to the detail view. It is required.
	Done func(entity T)
}

// FieldView is the render state of one form field.
type FieldView struct {
	Name      string
	Label     string
	Kind      FieldKind
	Value     string
	Disabled  bool
	Required  bool
	Error     string
	Remaining *int
	Options   []Option
}

// Form collects, validates and submits the input of one entity.
type Form[T Entity, P any] struct {
	module   *Module[T, P]
	mode     FormMode
	id       ID
	initial  Values
	notifier Notifier
	source   OptionSource
	done     func(entity T)
	logger   *log.Logger

	mu         sync.Mutex
	values     Values
	errs       map[string]i18n.Text
	options    map[string][]Option
	submitting bool
}

// NewCreateForm creates an empty form for a new entity.
func (m *Module[T, P]) NewCreateForm(opts FormOptions[T]) *Form[T, P] {
	return newForm(m, CreateMode, "", Values{}, opts)
}

// NewEditForm creates a form initialised from a loaded entity.
func (m *Module[T, P]) NewEditForm(entity T, opts FormOptions[T]) (*Form[T, P], error) {
	if !m.Schema.Updatable {
		return nil, ErrUpdateNotSupported
	}
	initial := Values{}
	if m.Schema.FromEntity != nil {
		initial = m.Schema.FromEntity(entity)
	}
	return newForm(m, EditMode, entity.EntityID(), initial, opts), nil
}

func newForm[T Entity, P any](m *Module[T, P], mode FormMode, id ID, initial Values,
	opts FormOptions[T]) *Form[T, P] {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Form[T, P]{
		module:   m,
		mode:     mode,
		id:       id,
		initial:  initial.Clone(),
		notifier: notifier,
		source:   opts.Options,
		done:     opts.Done,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, formLoggerComponentName),
			log.String(log.LoggerKeyEntity, m.Schema.Name)),
		values:  initial.Clone(),
		errs:    map[string]i18n.Text{},
		options: map[string][]Option{},
	}
}

// Mode returns the form mode.
func (f *Form[T, P]) Mode() FormMode {
	return f.mode
}

// Set updates a field and revalidates it.
func (f *Form[T, P]) Set(name, value string) error {
	spec, ok := f.module.Schema.Field(name)
	if !ok || !spec.visible(f.mode) {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if !spec.editable(f.mode) {
		return fmt.Errorf("%w: %s", ErrImmutableField, name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name] = value
	if msg, bad := f.checkLocked(spec); bad {
		f.errs[name] = msg
	} else {
		delete(f.errs, name)
	}
	return nil
}

// Value returns the current input of a field.
func (f *Form[T, P]) Value(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[name]
}

// Reset restores the initial values and clears errors.
func (f *Form[T, P]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = f.initial.Clone()
	f.errs = map[string]i18n.Text{}
}

// LoadOptions fetches the options of every reference field.
func (f *Form[T, P]) LoadOptions(ctx context.Context) error {
	if f.source == nil {
		return nil
	}
	for _, spec := range f.module.Schema.Fields {
		if spec.Kind != ReferenceField || spec.Lookup == "" || !spec.visible(f.mode) {
			continue
		}
		options, err := f.source.Options(ctx, spec.Lookup)
		if err != nil {
			f.logger.Error("Failed to load field options", log.String("field", spec.Name), log.Error(err))
			return err
		}
		f.mu.Lock()
		f.options[spec.Name] = options
		f.mu.Unlock()
	}
	return nil
}

// Validate checks every editable field. The returned error is a *ValidationError.
func (f *Form[T, P]) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

// CanSubmit reports whether the input is valid and no submission is pending.
func (f *Form[T, P]) CanSubmit() bool {
	if f.module.Store.Status(f.operation()).Loading {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return false
	}
	for _, spec := range f.module.Schema.Fields {
		if !spec.visible(f.mode) || !spec.editable(f.mode) {
			continue
		}
		if _, bad := f.checkLocked(spec); bad {
			return false
		}
	}
	return true
}

// Submit validates and sends the form. On success it notifies and performs the Done
// transition. On failure it raises a blocking error dialog and returns the error.
func (f *Form[T, P]) Submit(ctx context.Context) (T, error) {
	var zero T
	if f.done == nil {
		return zero, ErrNoTransition
	}
	op := f.operation()
	store := f.module.Store
	locale := i18n.CurrentLocale()

	f.mu.Lock()
	if f.submitting || store.Status(op).Loading {
		f.mu.Unlock()
		return zero, ErrSubmitInProgress
	}
	if err := f.validateLocked(); err != nil {
		f.mu.Unlock()
		f.logger.Debug("Form submission blocked by validation errors", log.Error(err))
		return zero, err
	}
	payload, err := f.module.Schema.BuildPayload(f.mode, f.payloadValuesLocked())
	if err != nil {
		f.mu.Unlock()
		info := serviceerror.FromServiceError(serviceerror.ErrorEncodeRequest, serviceerror.KindValidation, err)
		f.notifier.Alert(newErrorDialog(info, locale, errorDialogTitle,
			f.module.Schema.Labels.FailureMessage(op, 0)))
		return zero, info
	}
	f.submitting = true
	f.mu.Unlock()

	var entity T
	if f.mode == CreateMode {
		entity, err = store.Create(ctx, payload)
	} else {
		entity, err = store.Update(ctx, f.id, payload)
	}

	f.mu.Lock()
	f.submitting = false
	f.mu.Unlock()

	if err != nil {
		var info *serviceerror.ErrorInfo
		if !errors.As(err, &info) {
			info = f.module.Schema.Labels.errorInfoFor(op, err)
		}
		f.notifier.Alert(newErrorDialog(info, locale, errorDialogTitle,
			f.module.Schema.Labels.FailureMessage(op, info.Status)))
		return zero, err
	}

	message := store.Status(op).Message
	if message.IsZero() {
		message = f.module.Schema.Labels.SuccessMessage(op)
	}
	f.notifier.Success(message.In(locale))
	f.done(entity)
	return entity, nil
}

// Fields returns the render state of the visible fields.
func (f *Form[T, P]) Fields() []FieldView {
	locale := i18n.CurrentLocale()
	f.mu.Lock()
	defer f.mu.Unlock()
	views := make([]FieldView, 0, len(f.module.Schema.Fields))
	for _, spec := range f.module.Schema.Fields {
		if !spec.visible(f.mode) {
			continue
		}
		view := FieldView{
			Name:     spec.Name,
			Label:    spec.Label.In(locale),
			Kind:     spec.Kind,
			Value:    f.values[spec.Name],
			Disabled: !spec.editable(f.mode),
			Required: spec.Reason != nil || hasRule(spec.Rules, "required"),
			Options:  append([]Option(nil), f.options[spec.Name]...),
		}
		if msg, ok := f.errs[spec.Name]; ok {
			view.Error = msg.In(locale)
		}
		if spec.Reason != nil {
			remaining := spec.Reason.Remaining(view.Value)
			view.Remaining = &remaining
		}
		views = append(views, view)
	}
	return views
}

func (f *Form[T, P]) operation() Operation {
	if f.mode == EditMode {
		return OpUpdate
	}
	return OpCreate
}

func (f *Form[T, P]) validateLocked() error {
	verr := &ValidationError{}
	f.errs = map[string]i18n.Text{}
	for _, spec := range f.module.Schema.Fields {
		if !spec.visible(f.mode) || !spec.editable(f.mode) {
			continue
		}
		if msg, bad := f.checkLocked(spec); bad {
			f.errs[spec.Name] = msg
			verr.add(spec.Name, msg)
		}
	}
	return verr.orNil()
}

func (f *Form[T, P]) payloadValuesLocked() Values {
	out := Values{}
	for _, spec := range f.module.Schema.Fields {
		if spec.visible(f.mode) && spec.editable(f.mode) {
			out[spec.Name] = strings.TrimSpace(f.values[spec.Name])
		}
	}
	return out
}

// checkLocked validates one field and returns its message when invalid.
func (f *Form[T, P]) checkLocked(spec FieldSpec) (i18n.Text, bool) {
	raw := f.values[spec.Name]
	value := strings.TrimSpace(raw)
	if spec.Reason != nil {
		if fe := spec.Reason.Validate(spec.Name, raw); fe != nil {
			return fe.Message, true
		}
		return i18n.Text{}, false
	}

	var parsed interface{} = value
	switch spec.Kind {
	case NumberField, ReferenceField:
		var n int64
		if value != "" {
			var err error
			if n, err = strconv.ParseInt(value, 10, 64); err != nil {
				return numberMessage(spec), true
			}
		}
		if spec.Kind == ReferenceField && value != "" && n <= 0 {
			return numberMessage(spec), true
		}
		parsed = n
	case BoolField:
		if value != "" {
			if _, err := strconv.ParseBool(value); err != nil {
				return formatText("%s must be true or false", "يجب أن تكون قيمة %s صحيحة أو خاطئة", spec.Label), true
			}
		}
	case DateField:
		if value != "" {
			if _, err := time.Parse(dateLayout, value); err != nil {
				return formatText("%s must be a date in YYYY-MM-DD format", "يجب أن يكون %s تاريخاً بصيغة YYYY-MM-DD",
					spec.Label), true
			}
		}
	}

	if spec.Rules != "" {
		if err := validate.Var(parsed, spec.Rules); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				return ruleMessage(spec, verrs[0].Tag(), verrs[0].Param()), true
			}
			return formatText("%s is invalid", "%s غير صالح", spec.Label), true
		}
	}

	if spec.Kind == ReferenceField && value != "" {
		if options, ok := f.options[spec.Name]; ok && !containsOption(options, ID(value)) {
			return formatText("Select a valid %s", "اختر %s صالحاً", spec.Label), true
		}
	}
	return i18n.Text{}, false
}

func numberMessage(spec FieldSpec) i18n.Text {
	if spec.Kind == ReferenceField {
		return formatText("Select a valid %s", "اختر %s صالحاً", spec.Label)
	}
	return formatText("%s must be a whole number", "يجب أن يكون %s رقماً صحيحاً", spec.Label)
}

func ruleMessage(spec FieldSpec, tag, param string) i18n.Text {
	label := spec.Label
	numeric := spec.Kind == NumberField || spec.Kind == ReferenceField
	switch tag {
	case "required":
		if spec.Kind == ReferenceField {
			return formatText("%s must be selected", "يجب اختيار %s", label)
		}
		return formatText("%s is required", "%s مطلوب", label)
	case "min", "gte":
		if numeric {
			return i18n.NewText(fmt.Sprintf("%s must be at least %s", label.En, param),
				fmt.Sprintf("يجب أن يكون %s على الأقل %s", label.Ar, param))
		}
		return i18n.NewText(fmt.Sprintf("%s must be at least %s characters", label.En, param),
			fmt.Sprintf("يجب أن يتكون %s من %s أحرف على الأقل", label.Ar, param))
	case "max", "lte":
		if numeric {
			return i18n.NewText(fmt.Sprintf("%s must be at most %s", label.En, param),
				fmt.Sprintf("يجب ألا يتجاوز %s القيمة %s", label.Ar, param))
		}
		return i18n.NewText(fmt.Sprintf("%s must not exceed %s characters", label.En, param),
			fmt.Sprintf("يجب ألا يتجاوز %s %s حرفاً", label.Ar, param))
	case "gt":
		if spec.Kind == ReferenceField {
			return formatText("%s must be selected", "يجب اختيار %s", label)
		}
		return i18n.NewText(fmt.Sprintf("%s must be greater than %s", label.En, param),
			fmt.Sprintf("يجب أن يكون %s أكبر من %s", label.Ar, param))
	case "email":
		return formatText("%s must be a valid email address", "يجب أن يكون %s بريداً إلكترونياً صالحاً", label)
	case "len":
		return i18n.NewText(fmt.Sprintf("%s must be exactly %s characters", label.En, param),
			fmt.Sprintf("يجب أن يتكون %s من %s أحرف بالضبط", label.Ar, param))
	default:
		return formatText("%s is invalid", "%s غير صالح", label)
	}
}

func hasRule(rules, name string) bool {
	for _, rule := range strings.Split(rules, ",") {
		if strings.TrimSpace(rule) == name {
			return true
		}
	}
	return false
}

func containsOption(options []Option, id ID) bool {
	for _, o := range options {
		if o.ID == id {
			return true
		}
	}
	return false
}
