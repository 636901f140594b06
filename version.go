package regexsyntax

// EcmaVersion selects the edition of the ECMAScript RegExp grammar.
type EcmaVersion int

const (
	Ecma5    EcmaVersion = 5
	Ecma2015 EcmaVersion = 2015
	Ecma2016 EcmaVersion = 2016
	Ecma2017 EcmaVersion = 2017
	Ecma2018 EcmaVersion = 2018
	Ecma2019 EcmaVersion = 2019
	Ecma2020 EcmaVersion = 2020
	Ecma2021 EcmaVersion = 2021
	Ecma2022 EcmaVersion = 2022

	LatestEcmaVersion = Ecma2022
)

// Options configures a Validator or Parser.
// The zero value validates the latest edition with Annex B enabled.
type Options struct {
	// Strict disables the Annex B web-compatibility grammar.
	// The u flag turns it on regardless.
	Strict bool

	// EcmaVersion defaults to LatestEcmaVersion when zero.
	EcmaVersion EcmaVersion
}

func (o Options) version() EcmaVersion {
	if o.EcmaVersion == 0 {
		return LatestEcmaVersion
	}
	return o.EcmaVersion
}

// features holds every edition-dependent switch of the grammar.
type features struct {
	version EcmaVersion

	// ES2015: u and y flags.
	unicodeFlag bool
	stickyFlag  bool

	// ES2018: s flag, named groups, lookbehind, \p{...}.
	dotAllFlag      bool
	namedGroups     bool
	lookbehind      bool
	propertyEscapes bool

	// ES2020: surrogate pairs and \u{...} in group names without u.
	identifierSurrogates bool

	// ES2022: d flag.
	hasIndicesFlag bool
}

func newFeatures(v EcmaVersion) features {
	return features{
		version:              v,
		unicodeFlag:          v >= Ecma2015,
		stickyFlag:           v >= Ecma2015,
		dotAllFlag:           v >= Ecma2018,
		namedGroups:          v >= Ecma2018,
		lookbehind:           v >= Ecma2018,
		propertyEscapes:      v >= Ecma2018,
		identifierSurrogates: v >= Ecma2020,
		hasIndicesFlag:       v >= Ecma2022,
	}
}
