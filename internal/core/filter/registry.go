// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter

// # Match Kinds

// MatchKind selects the predicate used for a leaf category.
type MatchKind int

const (
	// MatchElement is a bidirectional substring test of the element id against the
	// extracted flag elements. It is also the fallback for unregistered categories.
	MatchElement MatchKind = iota
	MatchContinent
	MatchColor
	MatchColorCount
	MatchStarCount
	MatchLayout
	MatchSymbol
	MatchProportion
	MatchAllowList
)

// Rule is the declarative match definition of one leaf category.
type Rule struct {
	Match MatchKind

	// Synonyms expands an element id into the strings searched for. An element with
	// no entry is searched for as itself.
	Synonyms map[string][]string

	// Exclusions lists flag elements that never count toward an element id even when
	// a synonym matches them.
	Exclusions map[string][]string

	// Suppressors lists flag elements whose presence cancels a match on the element id.
	Suppressors map[string][]string

	// AllowList maps an element id to the country keys it selects.
	AllowList map[string][]string
}

func (r Rule) synonymsFor(elementID string) []string {
	if synonyms, ok := r.Synonyms[elementID]; ok {
		return synonyms
	}
	return []string{elementID}
}

// Registry maps leaf category ids to their rules.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry wraps a rule table.
func NewRegistry(rules map[string]Rule) *Registry {
	return &Registry{rules: rules}
}

// Rule returns the rule of a category.
func (r *Registry) Rule(categoryID string) (Rule, bool) {
	rule, ok := r.rules[categoryID]
	return rule, ok
}

// IsColorCategory reports whether categoryID holds palette colors.
func (r *Registry) IsColorCategory(categoryID string) bool {
	rule, ok := r.rules[categoryID]
	return ok && rule.Match == MatchColor
}

// # Default Rules

// DefaultRegistry returns the rule table matching the bundled taxonomy.
func DefaultRegistry() *Registry {
	return NewRegistry(map[string]Rule{
		"continents":  {Match: MatchContinent},
		"colors":      {Match: MatchColor},
		"color_count": {Match: MatchColorCount},
		"star_count":  {Match: MatchStarCount},
		"proportions": {Match: MatchProportion},
		Elements:      {Match: MatchElement},

		"layouts": {
			Match: MatchLayout,
			Synonyms: map[string][]string{
				"vertical_triband":   {"vertical_triband", "vertical_tricolor", "tricolor_vertical"},
				"horizontal_triband": {"horizontal_triband", "horizontal_tricolor", "tricolor_horizontal"},
				"vertical_bicolor":   {"vertical_bicolor", "vertical_bicolour", "bicolor_vertical"},
				"horizontal_bicolor": {"horizontal_bicolor", "horizontal_bicolour", "bicolor_horizontal"},
				"stripes":            {"stripes", "striped", "multiband"},
				"nordic_cross":       {"nordic_cross", "scandinavian_cross"},
				"cross":              {"cross", "greek_cross", "centered_cross"},
				"saltire":            {"saltire", "diagonal_cross", "st_andrews_cross"},
				"canton":             {"canton", "union_jack"},
				"diagonal_division":  {"diagonal", "diagonal_band", "bend"},
				"triangle_hoist":     {"triangle_hoist", "hoist_triangle", "chevron"},
				"plain":              {"plain", "solid_field", "monochrome"},
				"waves":              {"waves", "wavy"},
			},
		},

		"shapes": {
			Match: MatchSymbol,
			Synonyms: map[string][]string{
				"circle":   {"circle", "disc", "disk", "ring"},
				"triangle": {"triangle"},
				"diamond":  {"diamond", "rhombus", "lozenge"},
				"wheel":    {"wheel", "chakra"},
			},
		},

		"celestial": {
			Match: MatchSymbol,
			Synonyms: map[string][]string{
				"sun":           {"sun", "sunburst", "sun_rays", "rising_sun"},
				"moon":          {"moon", "crescent_moon", "full_moon"},
				"crescent":      {"crescent"},
				"stars":         {"single_star", "multiple_stars", "star"},
				"constellation": {"constellation", "southern_cross"},
			},
			Exclusions: map[string][]string{
				"stars": {"star_of_david"},
			},
			Suppressors: map[string][]string{
				"stars": {"constellation", "southern_cross"},
			},
		},

		"animals": {
			Match: MatchSymbol,
			Synonyms: map[string][]string{
				"eagle":            {"eagle", "double_headed_eagle", "condor", "falcon", "hawk"},
				"bird_of_paradise": {"bird_of_paradise"},
				"frigatebird":      {"frigatebird", "frigate_bird"},
				"lion":             {"lion"},
				"dragon":           {"dragon", "druk"},
				"snake":            {"snake", "serpent"},
			},
		},

		"flora": {
			Match: MatchSymbol,
			Synonyms: map[string][]string{
				"tree":         {"tree", "palm", "cedar", "ceiba"},
				"maple_leaf":   {"maple_leaf", "maple"},
				"olive_branch": {"olive_branch", "olive_wreath", "laurel", "wreath"},
				"cactus":       {"cactus", "nopal"},
			},
		},

		"weapons": {
			Match: MatchSymbol,
			Synonyms: map[string][]string{
				"sword":   {"sword", "sabre", "saber", "kukri", "scimitar"},
				"spear":   {"spear", "lance", "assegai"},
				"rifle":   {"rifle", "kalashnikov", "musket"},
				"machete": {"machete"},
				"shield":  {"shield", "escutcheon"},
			},
		},

		"human_figures": {
			Match: MatchSymbol,
			Synonyms: map[string][]string{
				"person": {"person", "human_figure", "warrior", "woman", "man"},
			},
			Exclusions: map[string][]string{
				"person": {"mandala"},
			},
		},

		"maritime": {
			Match: MatchSymbol,
			Synonyms: map[string][]string{
				"ship": {"ship", "boat", "dhow", "canoe", "galleon", "sailboat"},
				"wave": {"wave", "ocean", "sea_waves"},
			},
		},

		"architecture": {
			Match: MatchSymbol,
			Synonyms: map[string][]string{
				"temple": {"temple", "angkor_wat", "pagoda", "mosque", "shrine"},
				"castle": {"castle", "fortress", "citadel"},
				"tower":  {"tower", "minaret"},
			},
		},

		"heraldry": {
			Match: MatchSymbol,
			Synonyms: map[string][]string{
				"coat_of_arms": {"coat_of_arms", "arms", "escutcheon"},
				"emblem":       {"emblem", "seal", "national_emblem"},
				"crown":        {"crown", "tiara"},
				"union_jack":   {"union_jack", "union_flag"},
			},
		},

		"religious_symbols": {
			Match: MatchSymbol,
			Synonyms: map[string][]string{
				"christian_cross": {"christian_cross", "latin_cross", "cross_of_st_george"},
				"crescent_star":   {"crescent_star", "star_and_crescent"},
				"star_of_david":   {"star_of_david", "magen_david", "hexagram"},
				"dharma_wheel":    {"dharma_wheel", "dharmachakra", "ashoka_chakra"},
			},
		},

		"text_inscriptions": {
			Match: MatchSymbol,
			Synonyms: map[string][]string{
				"motto":          {"motto", "inscription", "banner", "scroll"},
				"religious_text": {"religious_text", "shahada", "takbir"},
			},
		},

		"local_symbols": {
			Match: MatchSymbol,
			Synonyms: map[string][]string{
				"map":              {"map", "island_map", "country_map"},
				"trident":          {"trident"},
				"keys":             {"keys", "crossed_keys"},
				"armillary_sphere": {"armillary_sphere"},
			},
			Exclusions: map[string][]string{
				"map": {"maple"},
			},
		},

		"culture_regions": {
			Match: MatchAllowList,
			AllowList: map[string][]string{
				"pan_african":         {"Angola", "Ethiopia", "Ghana", "Kenya", "Mozambique", "Tanzania"},
				"pan_arab":            {"Egypt", "Iraq", "Jordan", "Kuwait", "Palestine", "Saudi Arabia", "Sudan", "Syria", "United Arab Emirates", "Yemen"},
				"pan_slavic":          {"Croatia", "Czech Republic", "Russia", "Serbia", "Slovakia", "Slovenia"},
				"nordic":              {"Denmark", "Finland", "Iceland", "Norway", "Sweden"},
				"commonwealth_ensign": {"Australia", "Fiji", "New Zealand", "Tuvalu"},
			},
		},

		"color_schemes": {
			Match: MatchAllowList,
			AllowList: map[string][]string{
				"red_white_blue":     {"Australia", "Cambodia", "France", "Netherlands", "New Zealand", "Norway", "Russia", "United Kingdom", "United States"},
				"pan_african_colors": {"Angola", "Ethiopia", "Ghana", "Kenya", "Mozambique"},
				"pan_arab_colors":    {"Egypt", "Saudi Arabia"},
				"tricolore":          {"Belgium", "France", "Ireland", "Italy", "Mexico"},
			},
		},
	})
}
