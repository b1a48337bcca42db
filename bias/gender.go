package bias

// Default gender lexicon, after Bolukbasi et al. (2016). It makes the CLI
// usable without a config file; callers auditing other bias axes supply
// their own data.

// DefaultPositiveEnd and DefaultNegativeEnd orient the default gender
// direction.
const (
	DefaultPositiveEnd = "he"
	DefaultNegativeEnd = "she"
)

// DefaultDefinitionalPairs span the gender axis.
var DefaultDefinitionalPairs = []Pair{
	{"woman", "man"},
	{"girl", "boy"},
	{"she", "he"},
	{"mother", "father"},
	{"daughter", "son"},
	{"gal", "guy"},
	{"female", "male"},
	{"her", "his"},
	{"herself", "himself"},
	{"Mary", "John"},
}

// DefaultEqualitySets are rendered symmetric around the direction by hard
// debiasing.
var DefaultEqualitySets = [][]string{
	{"monastery", "convent"},
	{"spokesman", "spokeswoman"},
	{"priest", "nun"},
	{"dad", "mom"},
	{"men", "women"},
	{"councilman", "councilwoman"},
	{"grandpa", "grandma"},
	{"grandsons", "granddaughters"},
	{"testosterone", "estrogen"},
	{"uncle", "aunt"},
	{"wives", "husbands"},
	{"father", "mother"},
	{"he", "she"},
	{"boy", "girl"},
	{"boys", "girls"},
	{"brother", "sister"},
	{"brothers", "sisters"},
	{"businessman", "businesswoman"},
	{"chairman", "chairwoman"},
	{"colt", "filly"},
	{"congressman", "congresswoman"},
	{"dads", "moms"},
	{"dudes", "gals"},
	{"fatherhood", "motherhood"},
	{"fathers", "mothers"},
	{"fraternity", "sorority"},
	{"gentleman", "lady"},
	{"gentlemen", "ladies"},
	{"grandfather", "grandmother"},
	{"grandson", "granddaughter"},
	{"himself", "herself"},
	{"his", "her"},
	{"husband", "wife"},
	{"king", "queen"},
	{"kings", "queens"},
	{"male", "female"},
	{"males", "females"},
	{"man", "woman"},
	{"nephew", "niece"},
	{"prince", "princess"},
	{"schoolboy", "schoolgirl"},
	{"son", "daughter"},
	{"sons", "daughters"},
}

// DefaultSeedSpecificWords seed the specific-word learner for the gender
// axis.
var DefaultSeedSpecificWords = []string{
	"he", "she", "him", "her", "his", "hers", "himself", "herself",
	"man", "woman", "men", "women", "boy", "girl", "boys", "girls",
	"male", "female", "husband", "wife", "father", "mother",
	"son", "daughter", "king", "queen", "brother", "sister",
	"uncle", "aunt", "nephew", "niece", "prince", "princess",
}
