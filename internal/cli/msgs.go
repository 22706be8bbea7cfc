package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "A homebrew beer recipe evaluator"
	MsgVersionShort     = "Print version information"
	MsgVersionLong      = "Print detailed version information including commit hash and build date"
	MsgBrewShort        = "Evaluate recipes"
	MsgIngredientsShort = "List a recipe's ingredients"
	MsgLogShort         = "Compare a recipe's brew log with the prediction"
	MsgLogLong          = "Correct each gravity reading of the recipe's brew log and report the apparent attenuation and alcohol against the predicted original gravity."
	MsgCatalogShort     = "Browse the ingredient catalog"
	MsgFermentablesLong = "List the fermentables that recipes can reference by key."
	MsgCulturesLong     = "List the yeast and bacteria cultures that recipes can reference by key."
	MsgConvertShort     = "Convert a gravity between SG, Plato and Brix"
	MsgPrimingShort     = "Compute priming sugar for bottle conditioning"
	MsgPrimingLong      = "Compute the weight of priming sugar needed to carbonate a batch, for one sugar or for all of them."
	MsgGenConfigShort   = "Generate a default configuration file"
	MsgGenConfigLong    = "Output the default configuration to stdout or write it to the config file.\n\nEvery value is commented out so the file documents the defaults without pinning them."
	MsgCompletionShort  = "Generate shell completion script"
	MsgManShort         = "Generate the man page"

	// Version output
	MsgVersionFormat = "wort version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Status messages
	MsgConfigWritten = "Wrote %s\n"
	MsgConfigExists  = "%s already exists, use --force to overwrite\n"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat   = "Output format (auto, text, term, markdown, html, json, yaml)"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/wort/config.toml)"
	MsgFlagSet      = "Parameter set from the config file, applied in order"
	MsgFlagOverride = "Override a brewing parameter, e.g. --set efficiency=0.7"
	MsgFlagSearch   = "Fuzzy search the catalog"
	MsgFlagWrite    = "Write config to file instead of stdout"
	MsgFlagForce    = "Overwrite an existing config file"
	MsgFlagTemp     = "Warmest temperature the beer reached after fermentation, °F"
	MsgFlagVolumes  = "Target carbonation, volumes of CO2"
	MsgFlagGallons  = "Batch volume, gallons"
	MsgFlagSugar    = "Priming sugar; every sugar when empty"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/brew-long.txt
	msgBrewLongRaw string
	MsgBrewLong    = strings.TrimSpace(msgBrewLongRaw)

	//go:embed msgs/brew-example.txt
	msgBrewExampleRaw string
	MsgBrewExample    = strings.TrimSpace(msgBrewExampleRaw)

	//go:embed msgs/catalog-example.txt
	msgCatalogExampleRaw string
	MsgCatalogExample    = strings.TrimSpace(msgCatalogExampleRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimSpace(msgGenConfigExampleRaw)

	//go:embed msgs/convert-example.txt
	msgConvertExampleRaw string
	MsgConvertExample    = strings.TrimSpace(msgConvertExampleRaw)
)
