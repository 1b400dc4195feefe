// Package export writes screening reports to a blob store.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"pfasscreen/internal/blob"
	"pfasscreen/internal/core"
	"pfasscreen/pkg/domain"
)

// Object names written for every screening.
const (
	SummaryObject = "technical-summary.txt"
	EmailObject   = "business-email.txt"
	ResultObject  = "result.json"
)

// Metadata keys attached to every exported object.
const (
	MetaOverallStatus         = "overall-status"
	MetaHighestClassification = "highest-classification"
	MetaRunID                 = "run-id"
)

const (
	textContentType = "text/plain; charset=utf-8"
	jsonContentType = "application/json"
	maxSlugLength   = 64
)

// Document is the layout of result.json.
type Document struct {
	RunID      string              `json:"run_id"`
	ExportedAt time.Time           `json:"exported_at"`
	Output     domain.EngineOutput `json:"output"`
}

// Exporter stores the reports of a screening under <prefix>/<run id>/.
type Exporter struct {
	store   blob.Store
	prefix  string
	replace bool
	logger  core.Logger
	newID   func() string
	now     func() time.Time
}

// Option customises an Exporter.
type Option func(*Exporter)

// WithPrefix sets the key prefix. Leading and trailing slashes are dropped.
func WithPrefix(prefix string) Option {
	return func(e *Exporter) { e.prefix = strings.Trim(prefix, "/") }
}

// WithReplace makes Export overwrite reports already stored for the same id.
func WithReplace(replace bool) Option {
	return func(e *Exporter) { e.replace = replace }
}

// WithLogger sets the logger.
func WithLogger(l core.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithIDGenerator overrides the run id generator used when a screening has
// no usable sample id.
func WithIDGenerator(gen func() string) Option {
	return func(e *Exporter) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// New constructs an exporter writing to store.
func New(store blob.Store, opts ...Option) *Exporter {
	e := &Exporter{
		store:  store,
		logger: core.NewZapLogger(nil),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes the technical summary, the email draft and the full result
// as JSON. Objects are written in that order; the first failure aborts.
func (e *Exporter) Export(ctx context.Context, out domain.EngineOutput) ([]blob.Info, error) {
	runID := Slug(out.SampleID)
	if runID == "" {
		runID = e.newID()
	}
	doc, err := json.MarshalIndent(Document{RunID: runID, ExportedAt: e.now().UTC(), Output: out}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	objects := []struct {
		name        string
		contentType string
		body        []byte
	}{
		{SummaryObject, textContentType, []byte(out.TechnicalSummary)},
		{EmailObject, textContentType, []byte(out.BusinessEmailDraft)},
		{ResultObject, jsonContentType, doc},
	}
	metadata := map[string]string{
		MetaOverallStatus:         string(out.OverallStatus),
		MetaHighestClassification: string(out.M2.HighestClassification),
		MetaRunID:                 runID,
	}

	infos := make([]blob.Info, 0, len(objects))
	for _, obj := range objects {
		key := e.Key(runID, obj.name)
		if e.replace {
			if _, err := e.store.Delete(ctx, key); err != nil {
				return infos, fmt.Errorf("replace %s: %w", key, err)
			}
		}
		info, err := e.store.Put(ctx, key, bytes.NewReader(obj.body), blob.PutOptions{ContentType: obj.contentType, Metadata: metadata})
		if err != nil {
			return infos, fmt.Errorf("export %s: %w", key, err)
		}
		infos = append(infos, info)
	}
	e.logger.Info("screening exported",
		"run_id", runID,
		"driver", string(e.store.Driver()),
		"objects", len(infos),
		"overall_status", string(out.OverallStatus),
	)
	return infos, nil
}

// Key returns the object key for name under runID.
func (e *Exporter) Key(runID, name string) string {
	if e.prefix == "" {
		return path.Join(runID, name)
	}
	return path.Join(e.prefix, runID, name)
}

// Slug maps a sample id to a single safe key segment: accents are folded,
// runs of other characters become '-', and the result is trimmed. It returns
// "" when nothing usable remains.
func Slug(id string) string {
	var b strings.Builder
	dash := false
	for _, r := range norm.NFKD.String(id) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.'):
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	s := strings.Trim(b.String(), "-.")
	for strings.Contains(s, "..") {
		s = strings.ReplaceAll(s, "..", ".")
	}
	if len(s) > maxSlugLength {
		s = strings.TrimRight(s[:maxSlugLength], "-.")
	}
	return s
}
