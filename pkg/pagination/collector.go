package pagination

import (
	"context"

	"github.com/rs/zerolog/log"
)

// StopReason explains why a page collection ended.
type StopReason string

const (
	// StopPageCap means the configured maximum page count was reached.
	StopPageCap StopReason = "page_cap"

	// StopItemCap means the accumulated item count reached the cap.
	StopItemCap StopReason = "item_cap"

	// StopEmptyPage means the API returned a page with no items.
	StopEmptyPage StopReason = "empty_page"

	// StopNoNext means the response advertised no further page.
	StopNoNext StopReason = "no_next"

	// StopFetchError means a page request failed; items from earlier
	// pages are still returned.
	StopFetchError StopReason = "fetch_error"
)

// PageFunc fetches a single page. It returns the page's items and
// whether the API advertised a further page.
type PageFunc[T any] func(ctx context.Context, page int) (items []T, hasNext bool, err error)

// Config bounds a collection run.
type Config struct {
	// MaxPages stops the collection after this many pages. Zero means
	// no page cap.
	MaxPages int

	// MaxItems truncates the result to this many items. Zero means no
	// item cap.
	MaxItems int

	// Pacer inserts the fixed delay between consecutive pages. Nil
	// means no delay.
	Pacer *Pacer
}

// Result is the outcome of a collection run.
type Result[T any] struct {
	// Items holds every collected item in API order, truncated to
	// MaxItems when an item cap is configured.
	Items []T

	// Pages is the number of pages fetched, including a failed one.
	Pages int

	// Reason is why the collection stopped.
	Reason StopReason

	// Err is the fetch error when Reason is StopFetchError, nil
	// otherwise. It is informational; the collection itself never
	// fails.
	Err error
}

// Collect runs the sequential fetch loop from page 1 until a stopping
// condition triggers. The first condition to trigger wins.
func Collect[T any](ctx context.Context, cfg Config, fetch PageFunc[T]) Result[T] {
	var out Result[T]

	for page := 1; ; page++ {
		if cfg.MaxPages > 0 && page > cfg.MaxPages {
			out.Reason = StopPageCap
			return out
		}

		if page > 1 && cfg.Pacer != nil {
			if err := cfg.Pacer.Wait(ctx); err != nil {
				out.Reason = StopFetchError
				out.Err = err
				return out
			}
		}

		items, hasNext, err := fetch(ctx, page)
		out.Pages = page

		if err != nil {
			log.Warn().
				Err(err).
				Int("page", page).
				Int("items_so_far", len(out.Items)).
				Msg("Page fetch failed - keeping partial results")
			out.Reason = StopFetchError
			out.Err = err
			return out
		}

		if len(items) == 0 {
			out.Reason = StopEmptyPage
			return out
		}

		out.Items = append(out.Items, items...)

		if cfg.MaxItems > 0 && len(out.Items) >= cfg.MaxItems {
			out.Items = out.Items[:cfg.MaxItems]
			out.Reason = StopItemCap
			return out
		}

		if !hasNext {
			out.Reason = StopNoNext
			return out
		}
	}
}
