package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/logger"
	"github.com/wynnforge/wynnforge/internal/validation"
)

// Sentinel errors for catalog loading
var (
	ErrNoFetcher        = errors.New(ErrMsgNoFetcher)
	ErrNoUsableItems    = errors.New(ErrMsgNoUsableItems)
	ErrAllSourcesFailed = errors.New(ErrMsgAllSourcesFailed)
	ErrNoSnapshot       = errors.New(ErrMsgNoSnapshot)
)

// Loader ingests raw catalog documents into normalized, sorted items
type Loader interface {
	LoadFile(ctx context.Context, path string) ([]domain.Item, *IngestReport, error)
	LoadBytes(ctx context.Context, data []byte, source string) ([]domain.Item, *IngestReport, error)
}

type jsonLoader struct {
	validator  validation.SchemaValidator
	schemaPath string
}

// NewLoader creates a catalog loader. When validator and schemaPath are
// set, documents loaded from disk are schema-checked before normalization.
// Remote documents skip the schema and rely on tolerant ingest instead.
func NewLoader(validator validation.SchemaValidator, schemaPath string) Loader {
	return &jsonLoader{
		validator:  validator,
		schemaPath: schemaPath,
	}
}

// LoadFile reads and ingests a catalog document from disk. Disk documents
// are operator-provided, so schema violations fail the load outright.
func (l *jsonLoader) LoadFile(ctx context.Context, path string) ([]domain.Item, *IngestReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgReadCatalogFailed, path, err)
	}

	if l.validator != nil && l.schemaPath != "" {
		if err := l.validator.ValidateBytes(data, l.schemaPath); err != nil {
			return nil, nil, fmt.Errorf(ErrMsgSchemaInvalid, path, err)
		}
	}

	return l.LoadBytes(ctx, data, path)
}

// LoadBytes ingests a raw catalog document. The document may be a plain
// array of records, an {"items": [...]} or {"data": [...]} envelope, or an
// object keyed by item name. Malformed records are skipped and reported;
// only document-level failures return an error.
func (l *jsonLoader) LoadBytes(ctx context.Context, data []byte, source string) ([]domain.Item, *IngestReport, error) {
	log := logger.FromContext(ctx)

	records, err := decodeRecords(data)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	report := &IngestReport{
		Source:   source,
		Total:    len(records),
		LoadedAt: time.Now().UTC(),
	}

	items := make([]domain.Item, 0, len(records))
	seen := make(map[string]int, len(records))

	for i, rec := range records {
		if rec == nil {
			report.addIssue(Issue{Index: i, Reason: "record is not a JSON object"})
			report.Skipped++
			continue
		}
		item, ok := normalizeRecord(i, rec, report)
		if !ok {
			report.Skipped++
			continue
		}
		if prev, dup := seen[item.Name]; dup {
			items[prev] = item
			report.Duplicates++
			report.addIssue(Issue{Index: i, Name: item.Name, Field: "name", Reason: "duplicate name, kept last occurrence"})
			log.Debug(LogMsgDuplicateItem, "name", item.Name, "index", i)
			continue
		}
		seen[item.Name] = len(items)
		items = append(items, item)
	}
	report.Loaded = len(items)

	sort.Slice(items, func(a, b int) bool {
		if items[a].Level != items[b].Level {
			return items[a].Level < items[b].Level
		}
		return items[a].Name < items[b].Name
	})

	return items, report, nil
}

// decodeRecords turns the supported wire shapes into a flat record list.
// Array entries that are not objects decode to nil and are skipped during
// ingest. Name-keyed maps are walked in sorted key order so ingest stays
// deterministic, and the map key fills in a missing name field.
func decodeRecords(data []byte) ([]map[string]any, error) {
	var asArray []json.RawMessage
	if err := json.Unmarshal(data, &asArray); err == nil {
		records := make([]map[string]any, len(asArray))
		for i, raw := range asArray {
			var rec map[string]any
			if err := json.Unmarshal(raw, &rec); err == nil {
				records[i] = rec
			}
		}
		return records, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}

	for _, key := range []string{"items", "data"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var nested []map[string]any
		if err := json.Unmarshal(raw, &nested); err == nil {
			return nested, nil
		}
		var keyed map[string]map[string]any
		if err := json.Unmarshal(raw, &keyed); err != nil {
			return nil, fmt.Errorf("unsupported %q payload: %w", key, err)
		}
		return flattenKeyed(keyed), nil
	}

	// No envelope key: treat the whole object as a name-keyed map
	var keyed map[string]map[string]any
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, err
	}
	return flattenKeyed(keyed), nil
}

func flattenKeyed(keyed map[string]map[string]any) []map[string]any {
	names := make([]string, 0, len(keyed))
	for name := range keyed {
		names = append(names, name)
	}
	sort.Strings(names)

	records := make([]map[string]any, 0, len(keyed))
	for _, name := range names {
		rec := keyed[name]
		if rec == nil {
			rec = map[string]any{}
		}
		if _, ok := rec["name"]; !ok {
			rec["name"] = name
		}
		records = append(records, rec)
	}
	return records
}
