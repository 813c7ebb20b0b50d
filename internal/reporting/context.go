package reporting

import (
	"context"
	"maps"
	"time"
)

type reportingMetaContextKey struct{}

type reportingMeta struct {
	tags      map[string]string
	extras    map[string]string
	startedAt time.Time
}

func metaFromContext(ctx context.Context) reportingMeta {
	meta, ok := ctx.Value(reportingMetaContextKey{}).(reportingMeta)
	if !ok {
		return reportingMeta{
			tags:   make(map[string]string),
			extras: make(map[string]string),
		}
	}
	return reportingMeta{
		tags:      maps.Clone(meta.tags),
		extras:    maps.Clone(meta.extras),
		startedAt: meta.startedAt,
	}
}

func addMetaToContext(ctx context.Context, meta reportingMeta) context.Context {
	return context.WithValue(ctx, reportingMetaContextKey{}, meta)
}

func SetStartedAtInContext(ctx context.Context, startedAt time.Time) context.Context {
	meta := metaFromContext(ctx)
	meta.startedAt = startedAt

	return addMetaToContext(ctx, meta)
}

func AddExtrasToContext(ctx context.Context, extras map[string]string) context.Context {
	meta := metaFromContext(ctx)
	maps.Copy(meta.extras, extras)

	return addMetaToContext(ctx, meta)
}

func AddTagsToContext(ctx context.Context, tags map[string]string) context.Context {
	meta := metaFromContext(ctx)
	maps.Copy(meta.tags, tags)

	return addMetaToContext(ctx, meta)
}
