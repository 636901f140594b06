package regexsyntax

// Each table maps a property name or value to the first edition that
// accepts it.

var generalCategoryValues = map[string]EcmaVersion{
	"C": Ecma2018, "Cased_Letter": Ecma2018, "Cc": Ecma2018, "Cf": Ecma2018,
	"Close_Punctuation": Ecma2018, "Cn": Ecma2018, "Co": Ecma2018,
	"Combining_Mark": Ecma2018, "Connector_Punctuation": Ecma2018,
	"Control": Ecma2018, "Cs": Ecma2018, "Currency_Symbol": Ecma2018,
	"Dash_Punctuation": Ecma2018, "Decimal_Number": Ecma2018,
	"Enclosing_Mark": Ecma2018, "Final_Punctuation": Ecma2018,
	"Format": Ecma2018, "Initial_Punctuation": Ecma2018, "L": Ecma2018,
	"LC": Ecma2018, "Letter": Ecma2018, "Letter_Number": Ecma2018,
	"Line_Separator": Ecma2018, "Ll": Ecma2018, "Lm": Ecma2018,
	"Lo": Ecma2018, "Lowercase_Letter": Ecma2018, "Lt": Ecma2018,
	"Lu": Ecma2018, "M": Ecma2018, "Mark": Ecma2018, "Math_Symbol": Ecma2018,
	"Mc": Ecma2018, "Me": Ecma2018, "Mn": Ecma2018,
	"Modifier_Letter": Ecma2018, "Modifier_Symbol": Ecma2018, "N": Ecma2018,
	"Nd": Ecma2018, "Nl": Ecma2018, "No": Ecma2018,
	"Nonspacing_Mark": Ecma2018, "Number": Ecma2018,
	"Open_Punctuation": Ecma2018, "Other": Ecma2018, "Other_Letter": Ecma2018,
	"Other_Number": Ecma2018, "Other_Punctuation": Ecma2018,
	"Other_Symbol": Ecma2018, "P": Ecma2018, "Paragraph_Separator": Ecma2018,
	"Pc": Ecma2018, "Pd": Ecma2018, "Pe": Ecma2018, "Pf": Ecma2018,
	"Pi": Ecma2018, "Po": Ecma2018, "Private_Use": Ecma2018, "Ps": Ecma2018,
	"Punctuation": Ecma2018, "S": Ecma2018, "Sc": Ecma2018,
	"Separator": Ecma2018, "Sk": Ecma2018, "Sm": Ecma2018, "So": Ecma2018,
	"Space_Separator": Ecma2018, "Spacing_Mark": Ecma2018,
	"Surrogate": Ecma2018, "Symbol": Ecma2018, "Titlecase_Letter": Ecma2018,
	"Unassigned": Ecma2018, "Uppercase_Letter": Ecma2018, "Z": Ecma2018,
	"Zl": Ecma2018, "Zp": Ecma2018, "Zs": Ecma2018, "cntrl": Ecma2018,
	"digit": Ecma2018, "punct": Ecma2018,
}

var scriptValues = map[string]EcmaVersion{
	"Adlam": Ecma2018, "Adlm": Ecma2018, "Aghb": Ecma2018, "Ahom": Ecma2018,
	"Anatolian_Hieroglyphs": Ecma2018, "Arab": Ecma2018, "Arabic": Ecma2018,
	"Armenian": Ecma2018, "Armi": Ecma2018, "Armn": Ecma2018,
	"Avestan": Ecma2018, "Avst": Ecma2018, "Bali": Ecma2018,
	"Balinese": Ecma2018, "Bamu": Ecma2018, "Bamum": Ecma2018,
	"Bass": Ecma2018, "Bassa_Vah": Ecma2018, "Batak": Ecma2018,
	"Batk": Ecma2018, "Beng": Ecma2018, "Bengali": Ecma2018,
	"Bhaiksuki": Ecma2018, "Bhks": Ecma2018, "Bopo": Ecma2018,
	"Bopomofo": Ecma2018, "Brah": Ecma2018, "Brahmi": Ecma2018,
	"Brai": Ecma2018, "Braille": Ecma2018, "Bugi": Ecma2018,
	"Buginese": Ecma2018, "Buhd": Ecma2018, "Buhid": Ecma2018,
	"Cakm": Ecma2018, "Canadian_Aboriginal": Ecma2018, "Cans": Ecma2018,
	"Cari": Ecma2018, "Carian": Ecma2018, "Caucasian_Albanian": Ecma2018,
	"Chakma": Ecma2018, "Cham": Ecma2018, "Cher": Ecma2018,
	"Cherokee": Ecma2018, "Common": Ecma2018, "Copt": Ecma2018,
	"Coptic": Ecma2018, "Cprt": Ecma2018, "Cuneiform": Ecma2018,
	"Cypriot": Ecma2018, "Cyrillic": Ecma2018, "Cyrl": Ecma2018,
	"Deseret": Ecma2018, "Deva": Ecma2018, "Devanagari": Ecma2018,
	"Dsrt": Ecma2018, "Dupl": Ecma2018, "Duployan": Ecma2018,
	"Egyp": Ecma2018, "Egyptian_Hieroglyphs": Ecma2018, "Elba": Ecma2018,
	"Elbasan": Ecma2018, "Ethi": Ecma2018, "Ethiopic": Ecma2018,
	"Geor": Ecma2018, "Georgian": Ecma2018, "Glag": Ecma2018,
	"Glagolitic": Ecma2018, "Gonm": Ecma2018, "Goth": Ecma2018,
	"Gothic": Ecma2018, "Gran": Ecma2018, "Grantha": Ecma2018,
	"Greek": Ecma2018, "Grek": Ecma2018, "Gujarati": Ecma2018,
	"Gujr": Ecma2018, "Gurmukhi": Ecma2018, "Guru": Ecma2018, "Han": Ecma2018,
	"Hang": Ecma2018, "Hangul": Ecma2018, "Hani": Ecma2018, "Hano": Ecma2018,
	"Hanunoo": Ecma2018, "Hatr": Ecma2018, "Hatran": Ecma2018,
	"Hebr": Ecma2018, "Hebrew": Ecma2018, "Hira": Ecma2018,
	"Hiragana": Ecma2018, "Hluw": Ecma2018, "Hmng": Ecma2018,
	"Hung": Ecma2018, "Imperial_Aramaic": Ecma2018, "Inherited": Ecma2018,
	"Inscriptional_Pahlavi": Ecma2018, "Inscriptional_Parthian": Ecma2018,
	"Ital": Ecma2018, "Java": Ecma2018, "Javanese": Ecma2018,
	"Kaithi": Ecma2018, "Kali": Ecma2018, "Kana": Ecma2018,
	"Kannada": Ecma2018, "Katakana": Ecma2018, "Kayah_Li": Ecma2018,
	"Khar": Ecma2018, "Kharoshthi": Ecma2018, "Khmer": Ecma2018,
	"Khmr": Ecma2018, "Khoj": Ecma2018, "Khojki": Ecma2018,
	"Khudawadi": Ecma2018, "Knda": Ecma2018, "Kthi": Ecma2018,
	"Lana": Ecma2018, "Lao": Ecma2018, "Laoo": Ecma2018, "Latin": Ecma2018,
	"Latn": Ecma2018, "Lepc": Ecma2018, "Lepcha": Ecma2018, "Limb": Ecma2018,
	"Limbu": Ecma2018, "Lina": Ecma2018, "Linb": Ecma2018,
	"Linear_A": Ecma2018, "Linear_B": Ecma2018, "Lisu": Ecma2018,
	"Lyci": Ecma2018, "Lycian": Ecma2018, "Lydi": Ecma2018,
	"Lydian": Ecma2018, "Mahajani": Ecma2018, "Mahj": Ecma2018,
	"Malayalam": Ecma2018, "Mand": Ecma2018, "Mandaic": Ecma2018,
	"Mani": Ecma2018, "Manichaean": Ecma2018, "Marc": Ecma2018,
	"Marchen": Ecma2018, "Masaram_Gondi": Ecma2018, "Meetei_Mayek": Ecma2018,
	"Mend": Ecma2018, "Mende_Kikakui": Ecma2018, "Merc": Ecma2018,
	"Mero": Ecma2018, "Meroitic_Cursive": Ecma2018,
	"Meroitic_Hieroglyphs": Ecma2018, "Miao": Ecma2018, "Mlym": Ecma2018,
	"Modi": Ecma2018, "Mong": Ecma2018, "Mongolian": Ecma2018,
	"Mro": Ecma2018, "Mroo": Ecma2018, "Mtei": Ecma2018, "Mult": Ecma2018,
	"Multani": Ecma2018, "Myanmar": Ecma2018, "Mymr": Ecma2018,
	"Nabataean": Ecma2018, "Narb": Ecma2018, "Nbat": Ecma2018,
	"New_Tai_Lue": Ecma2018, "Newa": Ecma2018, "Nko": Ecma2018,
	"Nkoo": Ecma2018, "Nshu": Ecma2018, "Nushu": Ecma2018, "Ogam": Ecma2018,
	"Ogham": Ecma2018, "Ol_Chiki": Ecma2018, "Olck": Ecma2018,
	"Old_Hungarian": Ecma2018, "Old_Italic": Ecma2018,
	"Old_North_Arabian": Ecma2018, "Old_Permic": Ecma2018,
	"Old_Persian": Ecma2018, "Old_South_Arabian": Ecma2018,
	"Old_Turkic": Ecma2018, "Oriya": Ecma2018, "Orkh": Ecma2018,
	"Orya": Ecma2018, "Osage": Ecma2018, "Osge": Ecma2018, "Osma": Ecma2018,
	"Osmanya": Ecma2018, "Pahawh_Hmong": Ecma2018, "Palm": Ecma2018,
	"Palmyrene": Ecma2018, "Pau_Cin_Hau": Ecma2018, "Pauc": Ecma2018,
	"Perm": Ecma2018, "Phag": Ecma2018, "Phags_Pa": Ecma2018,
	"Phli": Ecma2018, "Phlp": Ecma2018, "Phnx": Ecma2018,
	"Phoenician": Ecma2018, "Plrd": Ecma2018, "Prti": Ecma2018,
	"Psalter_Pahlavi": Ecma2018, "Qaac": Ecma2018, "Qaai": Ecma2018,
	"Rejang": Ecma2018, "Rjng": Ecma2018, "Runic": Ecma2018, "Runr": Ecma2018,
	"Samaritan": Ecma2018, "Samr": Ecma2018, "Sarb": Ecma2018,
	"Saur": Ecma2018, "Saurashtra": Ecma2018, "Sgnw": Ecma2018,
	"Sharada": Ecma2018, "Shavian": Ecma2018, "Shaw": Ecma2018,
	"Shrd": Ecma2018, "Sidd": Ecma2018, "Siddham": Ecma2018,
	"SignWriting": Ecma2018, "Sind": Ecma2018, "Sinh": Ecma2018,
	"Sinhala": Ecma2018, "Sora": Ecma2018, "Sora_Sompeng": Ecma2018,
	"Soyo": Ecma2018, "Soyombo": Ecma2018, "Sund": Ecma2018,
	"Sundanese": Ecma2018, "Sylo": Ecma2018, "Syloti_Nagri": Ecma2018,
	"Syrc": Ecma2018, "Syriac": Ecma2018, "Tagalog": Ecma2018,
	"Tagb": Ecma2018, "Tagbanwa": Ecma2018, "Tai_Le": Ecma2018,
	"Tai_Tham": Ecma2018, "Tai_Viet": Ecma2018, "Takr": Ecma2018,
	"Takri": Ecma2018, "Tale": Ecma2018, "Talu": Ecma2018, "Tamil": Ecma2018,
	"Taml": Ecma2018, "Tang": Ecma2018, "Tangut": Ecma2018, "Tavt": Ecma2018,
	"Telu": Ecma2018, "Telugu": Ecma2018, "Tfng": Ecma2018, "Tglg": Ecma2018,
	"Thaa": Ecma2018, "Thaana": Ecma2018, "Thai": Ecma2018,
	"Tibetan": Ecma2018, "Tibt": Ecma2018, "Tifinagh": Ecma2018,
	"Tirh": Ecma2018, "Tirhuta": Ecma2018, "Ugar": Ecma2018,
	"Ugaritic": Ecma2018, "Vai": Ecma2018, "Vaii": Ecma2018, "Wara": Ecma2018,
	"Warang_Citi": Ecma2018, "Xpeo": Ecma2018, "Xsux": Ecma2018,
	"Yi": Ecma2018, "Yiii": Ecma2018, "Zanabazar_Square": Ecma2018,
	"Zanb": Ecma2018, "Zinh": Ecma2018, "Zyyy": Ecma2018,
	"Dogr": Ecma2019, "Dogra": Ecma2019, "Gong": Ecma2019,
	"Gunjala_Gondi": Ecma2019, "Hanifi_Rohingya": Ecma2019, "Maka": Ecma2019,
	"Makasar": Ecma2019, "Medefaidrin": Ecma2019, "Medf": Ecma2019,
	"Old_Sogdian": Ecma2019, "Rohg": Ecma2019, "Sogd": Ecma2019,
	"Sogdian": Ecma2019, "Sogo": Ecma2019,
	"Hmnp": Ecma2020, "Nand": Ecma2020, "Nandinagari": Ecma2020,
	"Nyiakeng_Puachue_Hmong": Ecma2020, "Wancho": Ecma2020, "Wcho": Ecma2020,
	"Chorasmian": Ecma2021, "Chrs": Ecma2021, "Diak": Ecma2021,
	"Dives_Akuru": Ecma2021, "Khitan_Small_Script": Ecma2021,
	"Kits": Ecma2021, "Yezi": Ecma2021, "Yezidi": Ecma2021,
	"Cpmn": Ecma2022, "Cypro_Minoan": Ecma2022, "Old_Uyghur": Ecma2022,
	"Ougr": Ecma2022, "Tangsa": Ecma2022, "Tnsa": Ecma2022, "Toto": Ecma2022,
	"Vith": Ecma2022, "Vithkuqi": Ecma2022,
}

var binaryProperties = map[string]EcmaVersion{
	"AHex": Ecma2018, "ASCII": Ecma2018, "ASCII_Hex_Digit": Ecma2018,
	"Alpha": Ecma2018, "Alphabetic": Ecma2018, "Any": Ecma2018,
	"Assigned": Ecma2018, "Bidi_C": Ecma2018, "Bidi_Control": Ecma2018,
	"Bidi_M": Ecma2018, "Bidi_Mirrored": Ecma2018, "CI": Ecma2018,
	"CWCF": Ecma2018, "CWCM": Ecma2018, "CWKCF": Ecma2018, "CWL": Ecma2018,
	"CWT": Ecma2018, "CWU": Ecma2018, "Case_Ignorable": Ecma2018,
	"Cased": Ecma2018, "Changes_When_Casefolded": Ecma2018,
	"Changes_When_Casemapped": Ecma2018, "Changes_When_Lowercased": Ecma2018,
	"Changes_When_NFKC_Casefolded": Ecma2018,
	"Changes_When_Titlecased": Ecma2018, "Changes_When_Uppercased": Ecma2018,
	"DI": Ecma2018, "Dash": Ecma2018,
	"Default_Ignorable_Code_Point": Ecma2018, "Dep": Ecma2018,
	"Deprecated": Ecma2018, "Dia": Ecma2018, "Diacritic": Ecma2018,
	"Emoji": Ecma2018, "Emoji_Component": Ecma2018,
	"Emoji_Modifier": Ecma2018, "Emoji_Modifier_Base": Ecma2018,
	"Emoji_Presentation": Ecma2018, "Ext": Ecma2018, "Extender": Ecma2018,
	"Gr_Base": Ecma2018, "Gr_Ext": Ecma2018, "Grapheme_Base": Ecma2018,
	"Grapheme_Extend": Ecma2018, "Hex": Ecma2018, "Hex_Digit": Ecma2018,
	"IDC": Ecma2018, "IDS": Ecma2018, "IDSB": Ecma2018, "IDST": Ecma2018,
	"IDS_Binary_Operator": Ecma2018, "IDS_Trinary_Operator": Ecma2018,
	"ID_Continue": Ecma2018, "ID_Start": Ecma2018, "Ideo": Ecma2018,
	"Ideographic": Ecma2018, "Join_C": Ecma2018, "Join_Control": Ecma2018,
	"LOE": Ecma2018, "Logical_Order_Exception": Ecma2018, "Lower": Ecma2018,
	"Lowercase": Ecma2018, "Math": Ecma2018, "NChar": Ecma2018,
	"Noncharacter_Code_Point": Ecma2018, "Pat_Syn": Ecma2018,
	"Pat_WS": Ecma2018, "Pattern_Syntax": Ecma2018,
	"Pattern_White_Space": Ecma2018, "QMark": Ecma2018,
	"Quotation_Mark": Ecma2018, "RI": Ecma2018, "Radical": Ecma2018,
	"Regional_Indicator": Ecma2018, "SD": Ecma2018, "STerm": Ecma2018,
	"Sentence_Terminal": Ecma2018, "Soft_Dotted": Ecma2018, "Term": Ecma2018,
	"Terminal_Punctuation": Ecma2018, "UIdeo": Ecma2018,
	"Unified_Ideograph": Ecma2018, "Upper": Ecma2018, "Uppercase": Ecma2018,
	"VS": Ecma2018, "Variation_Selector": Ecma2018, "White_Space": Ecma2018,
	"XIDC": Ecma2018, "XIDS": Ecma2018, "XID_Continue": Ecma2018,
	"XID_Start": Ecma2018, "space": Ecma2018,
	"Extended_Pictographic": Ecma2019,
	"EBase": Ecma2021, "EComp": Ecma2021, "EMod": Ecma2021, "EPres": Ecma2021,
	"ExtPict": Ecma2021,
}

func lookupProperty(table map[string]EcmaVersion, version EcmaVersion, name string) bool {
	since, ok := table[name]
	return ok && version >= since
}

func isGeneralCategoryName(name string) bool {
	return name == "General_Category" || name == "gc"
}

func isScriptName(name string) bool {
	switch name {
	case "Script", "Script_Extensions", "sc", "scx":
		return true
	}
	return false
}

func isValidUnicodeProperty(version EcmaVersion, name, value string) bool {
	if isGeneralCategoryName(name) && lookupProperty(generalCategoryValues, version, value) {
		return true
	}
	return isScriptName(name) && lookupProperty(scriptValues, version, value)
}

func isValidLoneUnicodeProperty(version EcmaVersion, value string) bool {
	return lookupProperty(binaryProperties, version, value)
}
