package forms

// Option configures a field declaration.
type Option func(*options)

// options holds all field configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for field options.
// All options (built-in and custom) use this system for consistency.
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Built-in field option keys.
var (
	OptLabel       = NewOptKey("label", "")
	OptPlaceholder = NewOptKey("placeholder", "")
	OptValue       = NewOptKey("value", "")
	OptMask        = NewOptKey("mask", rune(0))
	OptOrder       = NewOptKey("order", 0)
	OptOptional    = NewOptKey("optional", false)
	OptActive      = NewOptKey("active", false)
	OptRetain      = NewOptKey("retain", false)
)

// WithLabel sets the display label for the field. Fields without an
// explicit label use their placeholder text as the label.
func WithLabel(text string) Option {
	return WithOpt(OptLabel, text)
}

// WithPlaceholder sets the placeholder text shown while the field is empty
// and inactive.
func WithPlaceholder(text string) Option {
	return WithOpt(OptPlaceholder, text)
}

// WithValue sets the field's initial value. The cursor starts at end-of-text.
func WithValue(value string) Option {
	return WithOpt(OptValue, value)
}

// WithMask sets the mask character substituted for every rendered character.
func WithMask(mask rune) Option {
	return WithOpt(OptMask, mask)
}

// WithOrder sets the declared tab order. Fields focus in ascending order.
// Fields declared through a FormSpec default to their declaration index.
func WithOrder(order int) Option {
	return WithOpt(OptOrder, order)
}

// WithOptional marks the field as optional: an empty value is not an error.
func WithOptional() Option {
	return WithOpt(OptOptional, true)
}

// WithActive marks the field as the initially focused field.
// At most one field per form may be declared active.
func WithActive() Option {
	return WithOpt(OptActive, true)
}

// WithRetainOnSubmit keeps the value in the field after an Enter submit.
func WithRetainOnSubmit() Option {
	return WithOpt(OptRetain, true)
}
