// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"time"

	"github.com/pdiddy/mdinline/pkg/types"
)

// Recorder fans a conversion report out to the text log and, when a
// Store is attached, the history index. It implements the driver's
// sink contract.
type Recorder struct {
	Log   *Log
	Store *Store
}

// Converted appends the log line, then records the conversion in the
// history index if one is attached.
func (r *Recorder) Converted(source, output string, refs int) error {
	if r.Log != nil {
		if err := r.Log.Converted(source, output, refs); err != nil {
			return err
		}
	}
	if r.Store != nil {
		rec := types.ConversionRecord{
			Source:      source,
			Output:      output,
			Refs:        refs,
			ConvertedAt: time.Now().UTC(),
		}
		if err := r.Store.Record(context.Background(), rec); err != nil {
			return err
		}
	}
	return nil
}
