package messages

const (
	prefixKey        = "argmatch"
	MessagePrefixKey = prefixKey + ".msg"
)

// UI messages used by usage, help and error rendering
const (
	MsgUsageKey          = MessagePrefixKey + ".usage"
	MsgFlagsKey          = MessagePrefixKey + ".flags"
	MsgOptionsKey        = MessagePrefixKey + ".options"
	MsgArgsKey           = MessagePrefixKey + ".args"
	MsgSubcommandsKey    = MessagePrefixKey + ".subcommands"
	MsgMoreInfoKey       = MessagePrefixKey + ".more_info"
	MsgErrorPrefixKey    = MessagePrefixKey + ".error_prefix"
	MsgHelpFlagKey       = MessagePrefixKey + ".help_flag"
	MsgVersionFlagKey    = MessagePrefixKey + ".version_flag"
	MsgHelpSubcommandKey = MessagePrefixKey + ".help_subcommand"
	MsgPossibleValuesKey = MessagePrefixKey + ".possible_values"
	MsgDefaultKey        = MessagePrefixKey + ".default"
	MsgAliasesKey        = MessagePrefixKey + ".aliases"
)
