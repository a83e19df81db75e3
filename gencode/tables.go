package gencode

// NCBI translation tables. Each packed amino-acid string lists the 64
// codon products in TCAG enumeration order (TTT, TTC, TTA, TTG, TCT, ...).
func init() {
	register(1, "SGC0", "Standard",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"TTG", "CTG", "ATG"}, []string{"TAA", "TAG", "TGA"})
	register(2, "SGC1", "Vertebrate Mitochondrial",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG",
		[]string{"ATT", "ATC", "ATA", "ATG", "GTG"}, []string{"TAA", "TAG", "AGA", "AGG"})
	register(3, "SGC2", "Yeast Mitochondrial",
		"FFLLSSSSYY**CCWWTTTTPPPPHHQQRRRRIIMMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"ATA", "ATG", "GTG"}, []string{"TAA", "TAG"})
	register(4, "SGC3", "Mold Mitochondrial; Protozoan Mitochondrial; Coelenterate Mitochondrial; Mycoplasma; Spiroplasma",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"TTA", "TTG", "CTG", "ATT", "ATC", "ATA", "ATG", "GTG"}, []string{"TAA", "TAG"})
	register(5, "SGC4", "Invertebrate Mitochondrial",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSSSVVVVAAAADDEEGGGG",
		[]string{"TTG", "ATT", "ATC", "ATA", "ATG", "GTG"}, []string{"TAA", "TAG"})
	register(6, "SGC5", "Ciliate Nuclear; Dasycladacean Nuclear; Hexamita Nuclear",
		"FFLLSSSSYYQQCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"ATG"}, []string{"TGA"})
	register(9, "SGC8", "Echinoderm Mitochondrial; Flatworm Mitochondrial",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
		[]string{"ATG", "GTG"}, []string{"TAA", "TAG"})
	register(10, "SGC9", "Euplotid Nuclear",
		"FFLLSSSSYY**CCCWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"ATG"}, []string{"TAA", "TAG"})
	register(11, "", "Bacterial, Archaeal and Plant Plastid",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"TTG", "CTG", "ATT", "ATC", "ATA", "ATG", "GTG"}, []string{"TAA", "TAG", "TGA"})
	register(12, "", "Alternative Yeast Nuclear",
		"FFLLSSSSYY**CC*WLLLSPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"CTG", "ATG"}, []string{"TAA", "TAG", "TGA"})
	register(13, "", "Ascidian Mitochondrial",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSGGVVVVAAAADDEEGGGG",
		[]string{"TTG", "ATA", "ATG", "GTG"}, []string{"TAA", "TAG"})
	register(14, "", "Alternative Flatworm Mitochondrial",
		"FFLLSSSSYYY*CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
		[]string{"ATG"}, []string{"TAG"})
	register(15, "", "Blepharisma Macronuclear",
		"FFLLSSSSYY*QCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"ATG"}, []string{"TAA", "TGA"})
	register(16, "", "Chlorophycean Mitochondrial",
		"FFLLSSSSYY*LCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"ATG"}, []string{"TAA", "TGA"})
	register(21, "", "Trematode Mitochondrial",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
		[]string{"ATG", "GTG"}, []string{"TAA", "TAG"})
	register(22, "", "Scenedesmus obliquus Mitochondrial",
		"FFLLSS*SYY*LCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"ATG"}, []string{"TCA", "TAA", "TGA"})
	register(23, "", "Thraustochytrium Mitochondrial",
		"FF*LSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"ATT", "ATG", "GTG"}, []string{"TTA", "TAA", "TAG", "TGA"})
	register(24, "", "Rhabdopleuridae Mitochondrial",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSSKVVVVAAAADDEEGGGG",
		[]string{"TTG", "CTG", "ATG", "GTG"}, []string{"TAA", "TAG"})
	register(25, "", "Candidate Division SR1 and Gracilibacteria",
		"FFLLSSSSYY**CCGWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"TTG", "ATG", "GTG"}, []string{"TAA", "TAG"})
	register(26, "", "Pachysolen tannophilus Nuclear",
		"FFLLSSSSYY**CC*WLLLAPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"CTG", "ATG"}, []string{"TAA", "TAG", "TGA"})
	register(27, "", "Karyorelict Nuclear",
		"FFLLSSSSYYQQCCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"ATG"}, []string{"TGA"})
	register(28, "", "Condylostoma Nuclear",
		"FFLLSSSSYYQQCCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"ATG"}, []string{"TAA", "TAG", "TGA"})
	register(29, "", "Mesodinium Nuclear",
		"FFLLSSSSYYYYCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"ATG"}, []string{"TGA"})
	register(30, "", "Peritrich Nuclear",
		"FFLLSSSSYYEECC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"ATG"}, []string{"TGA"})
	register(31, "", "Blastocrithidia Nuclear",
		"FFLLSSSSYYEECCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"ATG"}, []string{"TAA", "TAG"})
	register(32, "", "Balanophoraceae Plastid",
		"FFLLSSSSYY*WCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		[]string{"TTG", "CTG", "ATT", "ATC", "ATA", "ATG", "GTG"}, []string{"TAA", "TGA"})
	register(33, "", "Cephalodiscidae Mitochondrial",
		"FFLLSSSSYYY*CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSSKVVVVAAAADDEEGGGG",
		[]string{"TTG", "CTG", "ATG", "GTG"}, []string{"TAG"})
}
