// Package sapling is the data and visual model for UI widgets built on
// [Ebitengine].
//
// Sapling provides data references that bind a widget to one field of a
// data container, a layered visual model for multi-image icons, and the
// conversion shims that translate its own angles, colors, alignment and
// keys to and from Ebitengine's.
//
// # Data references
//
// A [Container] exposes named fields, a staleness flag and a last-change
// timestamp. [Store] is the ready-made implementation. [Bind] creates a
// [Ref] to one field; the reference never owns the container and reports
// [ErrDetached] once the container is gone.
//
//	store := sapling.NewStore()
//	store.Set("gold", 1200)
//
//	gold := sapling.Bind[int](store, "gold")
//	gold.Template = "{0} gold"
//	s, err := gold.Text() // "1200 gold"
//
// Text runs the value through an optional [Localizer] and an optional
// template [Formatter]. [IndexFormatter] is the default; [LocaleFormatter]
// and [CatalogLocalizer] use [x/text] for number formatting and message
// catalogs.
//
// # Visuals
//
// A [Layer] is an immutable image reference with a tint, a rotation in
// degrees and a translation. A [Visual] stacks layers bottom-up under an
// [Anchor] and an overall translation:
//
//	badge := sapling.NewVisual(
//		sapling.NewLayer(frameImage),
//		sapling.NewTintedLayer(starImage, sapling.Color{R: 255, G: 204, B: 51, A: 255}),
//	)
//	badge.Anchor = sapling.AnchorCenter
//
// Draw each layer with [Visual.LayerGeoM] and [Layer.ColorScale].
// [LoadVisuals] reads named visuals and icon sets from YAML or JSON.
//
// # Shims
//
// [DegToRad], [ColorToScale], [ScaleToColor], [AlignToText] and
// [KeyFromEbiten] convert at the boundary with Ebitengine. Keys outside the
// mapped set become [KeyUnknown].
//
// # Logging
//
// Sapling is silent by default. Pass a [log/slog] logger to [SetLogger] and
// call [SetDebugMode] to see diagnostics.
//
// [Ebitengine]: https://ebitengine.org
// [x/text]: https://pkg.go.dev/golang.org/x/text
package sapling
