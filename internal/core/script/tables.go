package script

// CJK admits ASCII digits and the CJK unified ideograph blocks, so both
// simplified and traditional characters pass.
var CJK = MustTable("cjk",
	Range{0x0030, 0x0039}, // digits
	Range{0x4E00, 0x62FF},
	Range{0x6300, 0x77FF},
	Range{0x7800, 0x8CFF},
	Range{0x8D00, 0x9FCC},
	Range{0x3400, 0x4DB5}, // extension A
	Range{0x20000, 0x215FF},
	Range{0x21600, 0x230FF},
	Range{0x23100, 0x245FF},
	Range{0x24600, 0x260FF},
	Range{0x26100, 0x275FF},
	Range{0x27600, 0x290FF},
	Range{0x29100, 0x2A6DF},
	Range{0x2A700, 0x2B734},
	Range{0x2B740, 0x2B81D},
	Range{0x2B820, 0x2CEAF},
	Range{0x2CEB0, 0x2EBEF},
	Range{0x2F800, 0x2FA1F}, // compatibility supplement
)

// Thai admits ASCII digits and the Thai block.
var Thai = MustTable("thai",
	Range{0x0030, 0x0039}, // digits
	Range{0x0E01, 0x0E0F},
	Range{0x0E10, 0x0E1F},
	Range{0x0E20, 0x0E2F},
	Range{0x0E30, 0x0E3F},
	Range{0x0E40, 0x0E4F},
	Range{0x0E50, 0x0E5B},
)

// Vietnamese admits printable ASCII plus the precomposed Latin letters used by
// Vietnamese orthography.
var Vietnamese = MustTable("vietnamese",
	Range{0x0020, 0x002F},
	Range{0x0030, 0x0039},
	Range{0x003A, 0x0040},
	Range{0x0041, 0x005A},
	Range{0x005B, 0x0060},
	Range{0x0061, 0x007A},
	Range{0x007B, 0x007E},
	Range{0x00C0, 0x00C3},
	Range{0x00C8, 0x00CA},
	Range{0x00CC, 0x00CD},
	Range{0x00D0, 0x00D0},
	Range{0x00D2, 0x00D5},
	Range{0x00D9, 0x00DA},
	Range{0x00DD, 0x00DD},
	Range{0x00E0, 0x00E3},
	Range{0x00E8, 0x00EA},
	Range{0x00EC, 0x00ED},
	Range{0x00F2, 0x00F5},
	Range{0x00F9, 0x00FA},
	Range{0x00FD, 0x00FD},
	Range{0x0102, 0x0103},
	Range{0x0110, 0x0111},
	Range{0x0128, 0x0129},
	Range{0x0168, 0x0169},
	Range{0x01A0, 0x01B0},
	Range{0x1EA0, 0x1EF9},
)

// Tamil admits the space character and the assigned code points of the Tamil block.
var Tamil = MustTable("tamil",
	Range{0x0020, 0x0020}, // space
	Range{0x0B82, 0x0B83},
	Range{0x0B85, 0x0B8A},
	Range{0x0B8E, 0x0B8F},
	Range{0x0B90, 0x0B90},
	Range{0x0B92, 0x0B95},
	Range{0x0B99, 0x0B9A},
	Range{0x0B9C, 0x0B9C},
	Range{0x0B9E, 0x0B9F},
	Range{0x0BA3, 0x0BA4},
	Range{0x0BA8, 0x0BAA},
	Range{0x0BAE, 0x0BAF},
	Range{0x0BB0, 0x0BB9},
	Range{0x0BBE, 0x0BBF},
	Range{0x0BC0, 0x0BC2},
	Range{0x0BC6, 0x0BC8},
	Range{0x0BCA, 0x0BCD},
	Range{0x0BD0, 0x0BD0},
	Range{0x0BD7, 0x0BD7},
	Range{0x0BE6, 0x0BEF},
	Range{0x0BF0, 0x0BFA},
)
