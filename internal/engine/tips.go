// internal/engine/tips.go
package engine

// TipsTable maps a garment category to its styling tips. The styling-tips
// worker can substitute a table loaded from an external registry; the engine
// ships a built-in default.
type TipsTable map[string][]StylingTip

var defaultTips = TipsTable{
	"tops": {
		{Text: "Tuck slim-fit tops into high-waisted bottoms to define the waistline.", CategoryLabel: "Tops"},
		{Text: "Layer an open shirt over a fitted tee for an easy casual look.", CategoryLabel: "Tops"},
		{Text: "Roll sleeves to the mid-forearm to balance a relaxed cut.", CategoryLabel: "Tops"},
	},
	"bottoms": {
		{Text: "Cuff straight-leg trousers once to show off your footwear.", CategoryLabel: "Bottoms"},
		{Text: "Pair wide-leg bottoms with a fitted top to keep proportions balanced.", CategoryLabel: "Bottoms"},
	},
	"dresses": {
		{Text: "Add a thin belt to an A-line dress to accent the natural waist.", CategoryLabel: "Dresses"},
		{Text: "A cropped jacket keeps a midi dress from overwhelming a petite frame.", CategoryLabel: "Dresses"},
	},
	"outerwear": {
		{Text: "Leave structured coats unbuttoned over chunky knits to avoid bulk.", CategoryLabel: "Outerwear"},
		{Text: "Match coat length to hemline: longline coats pair best with midi cuts.", CategoryLabel: "Outerwear"},
	},
	"shoes": {
		{Text: "Match shoe tone to trouser hem for a longer leg line.", CategoryLabel: "Shoes"},
		{Text: "Chunky soles ground wide-leg silhouettes.", CategoryLabel: "Shoes"},
	},
	"accessories": {
		{Text: "Scale accessories to the outfit: minimal jewelry with busy prints.", CategoryLabel: "Accessories"},
		{Text: "A structured bag sharpens soft, draped silhouettes.", CategoryLabel: "Accessories"},
	},
}

// TipsFor looks up the built-in styling tips for a category. Unknown
// categories return an empty list rather than generic guidance. The lookup is
// deterministic and the returned slice is the caller's to keep.
func (e *Engine) TipsFor(category string) []StylingTip {
	return TipsFromTable(defaultTips, category)
}

// TipsFromTable performs the same deterministic lookup against an arbitrary
// table, copying the entries so callers cannot mutate the source.
func TipsFromTable(table TipsTable, category string) []StylingTip {
	tips, ok := table[category]
	if !ok {
		return []StylingTip{}
	}
	out := make([]StylingTip, len(tips))
	copy(out, tips)
	return out
}
