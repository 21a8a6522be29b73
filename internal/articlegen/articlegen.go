// Package articlegen defines the SEO article generator form and its stub
// submission.
package articlegen

import (
	"github.com/csheth/leaddesk/internal/form"
	"github.com/csheth/leaddesk/internal/notify"
)

// Field enumerates the article form keys.
type Field int

const (
	Topic Field = iota
	Keywords
	Language
	WritingStyle
	ArticleLength
	TargetAudience
	Variants
	WordPressURL
	WordPressUsername
	WordPressPassword
)

var fieldNames = [...]string{
	Topic:             "topic",
	Keywords:          "keywords",
	Language:          "language",
	WritingStyle:      "writingStyle",
	ArticleLength:     "articleLength",
	TargetAudience:    "targetAudience",
	Variants:          "variants",
	WordPressURL:      "wordpressUrl",
	WordPressUsername: "wordpressUsername",
	WordPressPassword: "wordpressPassword",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// Secret reports whether the field value must never be echoed or logged.
func (f Field) Secret() bool {
	return f == WordPressPassword
}

var (
	TopicRequired = notify.Notification{
		Title:       "Topic Required",
		Description: "Please provide a topic for your article.",
		Severity:    notify.SeverityDestructive,
	}
	GenerationStarted = notify.Notification{
		Title:       "Article Generation Started",
		Description: "Your SEO-optimized article is being generated...",
		Severity:    notify.SeverityDefault,
	}
)

// WordPressHint is shown above the credential fields.
const WordPressHint = "To automatically post to your WordPress blog, install our plugin and provide your credentials below:"

// Fields returns the form definition in display order.
func Fields() []form.Field[Field] {
	return []form.Field[Field]{
		{
			Key:         Topic,
			Label:       "Topic",
			Placeholder: "Enter your article topic or provide a brief description...",
			Help:        "Provide a clear topic or description for your article",
			Kind:        form.KindMultiline,
			Required:    true,
			CharLimit:   1000,
		},
		{
			Key:         Keywords,
			Label:       "Keywords (Comma Separated)",
			Placeholder: "e.g. Reactjs, Hook, Context",
			Help:        "Add relevant keywords to optimize your content",
			Kind:        form.KindText,
			CharLimit:   200,
		},
		{
			Key:     Language,
			Label:   "Language",
			Kind:    form.KindSelect,
			Default: "english",
			Options: []form.Option{
				{Value: "english", Label: "English"},
				{Value: "spanish", Label: "Spanish"},
				{Value: "french", Label: "French"},
				{Value: "german", Label: "German"},
			},
		},
		{
			Key:     WritingStyle,
			Label:   "Writing Style",
			Kind:    form.KindSelect,
			Default: "professional",
			Options: []form.Option{
				{Value: "professional", Label: "Professional"},
				{Value: "casual", Label: "Casual"},
				{Value: "academic", Label: "Academic"},
				{Value: "creative", Label: "Creative"},
			},
		},
		{
			Key:     ArticleLength,
			Label:   "Article Length",
			Kind:    form.KindSelect,
			Default: "medium",
			Options: []form.Option{
				{Value: "short", Label: "Short (300-500 words)"},
				{Value: "medium", Label: "Medium (500-1000 words)"},
				{Value: "long", Label: "Long (1000+ words)"},
			},
		},
		{
			Key:     TargetAudience,
			Label:   "Target Audience",
			Kind:    form.KindSelect,
			Default: "general",
			Options: []form.Option{
				{Value: "general", Label: "General Public"},
				{Value: "beginners", Label: "Beginners"},
				{Value: "intermediate", Label: "Intermediate"},
				{Value: "experts", Label: "Experts"},
			},
		},
		{
			Key:     Variants,
			Label:   "Variants",
			Kind:    form.KindSelect,
			Default: "3",
			Options: []form.Option{
				{Value: "1", Label: "1 Variant"},
				{Value: "2", Label: "2 Variants"},
				{Value: "3", Label: "Max 3 for demo"},
			},
		},
		{
			Key:         WordPressURL,
			Label:       "WordPress Admin URL",
			Placeholder: "https://yoursite.com/wp-admin",
			Kind:        form.KindText,
			CharLimit:   200,
		},
		{
			Key:         WordPressUsername,
			Label:       "Username",
			Placeholder: "admin",
			Kind:        form.KindText,
			CharLimit:   80,
		},
		{
			Key:         WordPressPassword,
			Label:       "Password",
			Placeholder: "••••••••",
			Kind:        form.KindSecret,
			CharLimit:   128,
		},
	}
}

// NewState returns a fresh form state holding the defaults.
func NewState() *form.State[Field] {
	return form.NewState(Fields())
}

// Submit requires a topic and reports the outcome to sink. No article is
// generated and the credentials are never used.
func Submit(state *form.State[Field], sink notify.Sink) error {
	if err := form.RequireNonBlank(state, Topic); err != nil {
		sink.Notify(TopicRequired)
		return err
	}
	sink.Notify(GenerationStarted)
	return nil
}
