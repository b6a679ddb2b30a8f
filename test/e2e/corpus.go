package e2e

import "fmt"

// Submission is one file of the E2E corpus.
type Submission struct {
	Name    string
	Content string
}

// Corpus holds submissions and the pairs (by file name) known to be copies.
type Corpus struct {
	Submissions []Submission
	// CopiedPairs maps an original's file name to the file name of its copy.
	CopiedPairs map[string]string
}

var essays = []string{
	"Photosynthesis converts sunlight water and carbon dioxide into glucose and oxygen. Chlorophyll inside chloroplasts absorbs red and blue light while reflecting green wavelengths. Plants store the produced sugars as starch for later growth.",
	"The French Revolution began when fiscal crisis and bread shortages pushed Parisian crowds toward open rebellion. Storming the Bastille symbolized the collapse of royal authority. Revolutionary assemblies later abolished feudal privileges entirely.",
	"Plate tectonics explains how rigid lithospheric plates drift across the mantle. Collisions between continental plates raise mountain ranges such as the Himalayas. Subduction zones recycle oceanic crust and trigger volcanic arcs.",
	"Supply and demand determine market prices through competitive bidding among buyers and sellers. When demand rises faster than supply, prices climb until equilibrium returns. Price ceilings frequently create persistent shortages.",
	"Shakespeare wrote Hamlet around sixteen hundred, exploring revenge madness and mortality. The prince hesitates repeatedly before avenging his murdered father. Soliloquies reveal his tormented reasoning to the audience.",
	"Antibiotics kill bacteria by disrupting cell walls, ribosomes or metabolic enzymes. Overprescription accelerates resistance because surviving microbes pass protective genes onward. Hospitals therefore monitor antibiotic stewardship carefully.",
	"Medieval castles evolved from wooden motte fortifications into massive stone keeps. Concentric curtain walls, moats and gatehouses slowed attacking armies. Gunpowder artillery eventually rendered these defenses obsolete.",
	"Jazz emerged in New Orleans, blending blues ragtime and brass band traditions. Improvisation lets soloists reinterpret melodies spontaneously during performances. Swing orchestras later popularized jazz across dance halls.",
	"Glaciers carve valleys through plucking and abrasion as compacted ice flows downhill. Retreating glaciers deposit moraines containing unsorted rock debris. Fjords form when carved valleys flood with seawater.",
	"Cryptocurrency ledgers rely on distributed consensus among independent validating nodes. Proof of work requires miners to solve expensive hashing puzzles. Critics highlight enormous electricity consumption.",
	"Honeybees communicate flower locations through waggle dances performed inside the hive. Worker bees collect nectar and pollen, pollinating crops along their routes. Colony collapse threatens agricultural yields worldwide.",
	"Roman aqueducts transported fresh water across valleys using gravity and precisely graded channels. Arched bridges carried conduits over rivers and ravines. Public fountains and baths depended on this engineering.",
}

// copySuffix is appended to an essay to build a lightly edited copy.
const copySuffix = " Honestly I found this subject fascinating."

// copies is the number of leading essays that also get a copied submission.
const copies = 4

// BuildCorpus returns one submission per essay plus a lightly edited copy of the
// first few essays. File types rotate through SupportedFileExtensions, and a copy
// never shares its original's type.
func BuildCorpus() *Corpus {
	c := &Corpus{CopiedPairs: make(map[string]string)}
	n := len(SupportedFileExtensions)
	for i, essay := range essays {
		name := fmt.Sprintf("essay-%02d%s", i, SupportedFileExtensions[i%n])
		c.Submissions = append(c.Submissions, Submission{Name: name, Content: essay})
		if i < copies {
			copyName := fmt.Sprintf("copy-%02d%s", i, SupportedFileExtensions[(i+1)%n])
			c.Submissions = append(c.Submissions, Submission{Name: copyName, Content: essay + copySuffix})
			c.CopiedPairs[name] = copyName
		}
	}
	return c
}
