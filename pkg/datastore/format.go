// Copyright © 2018 One Concern

package datastore

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/rit/pkg/errors"
	"github.com/oneconcern/rit/pkg/opencloud"
)

// ErrFormatting indicates that a value could not be rendered, as opposed to a remote failure
var ErrFormatting = errors.New("formatting error")

const (
	itemSeparator = "\n\n"
	jsonIndent    = "  "
)

var (
	header   = color.New(color.FgYellow).SprintFunc()
	active   = color.New(color.FgGreen).SprintFunc()
	deleting = color.New(color.FgRed).SprintFunc()

	jsonValues = jsoniter.Config{
		EscapeHTML:             false,
		UseNumber:              true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func join(blocks []string) string {
	return strings.Join(blocks, itemSeparator)
}

// FormatStoreList renders a page of datastores
func FormatStoreList(stores []opencloud.DataStore) string {
	blocks := make([]string, 0, len(stores))
	for _, store := range stores {
		blocks = append(blocks,
			header("datastore "+store.Name)+"\n"+
				"Created: "+formatTime(store.CreatedTime))
	}
	return join(blocks)
}

// FormatEntryList renders a page of entry keys
func FormatEntryList(keys []opencloud.EntryKey) string {
	blocks := make([]string, 0, len(keys))
	for _, key := range keys {
		blocks = append(blocks,
			header("key "+key.Key)+"\n"+
				"Scope: "+key.Scope)
	}
	return join(blocks)
}

func versionStatus(v opencloud.EntryVersion) string {
	if v.Deleted {
		return deleting("DELETING")
	}
	return active("ACTIVE")
}

func formatVersion(v opencloud.EntryVersion) string {
	var b strings.Builder
	b.WriteString(header("version "+v.Version) + " (" + versionStatus(v) + ")\n")
	b.WriteString("Length:  " + strconv.FormatUint(v.ContentLength, 10) + "\n")
	b.WriteString("Created: " + formatTime(v.CreatedTime) + "\n\n")
	b.WriteString("    Object Created: " + formatTime(v.ObjectCreatedTime))
	return b.String()
}

// FormatVersionList renders a page of entry versions. A tombstone is reported as DELETING.
func FormatVersionList(versions []opencloud.EntryVersion) string {
	blocks := make([]string, 0, len(versions))
	for _, v := range versions {
		blocks = append(blocks, formatVersion(v))
	}
	return join(blocks)
}

// FormatEntryVersion renders the version returned when setting an entry
func FormatEntryVersion(v *opencloud.EntryVersion) (string, error) {
	b, err := jsonValues.MarshalIndent(v, "", jsonIndent)
	if err != nil {
		return "", ErrFormatting.Wrap(err)
	}
	return string(b), nil
}

// FormatJSONValue re-indents a JSON document.
//
// Numbers are kept verbatim. A value which is not valid UTF-8 JSON yields ErrFormatting.
func FormatJSONValue(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrFormatting.Wrapf("empty value is not valid JSON")
	}
	if !utf8.ValidString(raw) {
		return "", ErrFormatting.Wrapf("value is not valid UTF-8")
	}
	var v interface{}
	if err := jsonValues.UnmarshalFromString(raw, &v); err != nil {
		return "", ErrFormatting.Wrap(err)
	}
	b, err := jsonValues.MarshalIndent(v, "", jsonIndent)
	if err != nil {
		return "", ErrFormatting.Wrap(err)
	}
	return string(b), nil
}
