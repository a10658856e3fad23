package constants

// Names of the flags shared by every action command. The commands register
// them and the help/overview output refers to them; keeping the names here
// stops the two from drifting apart.
const (
	FlagDefine  = "define"
	FlagSysProp = "sysprop"
	FlagDebug   = "debug"
)

const FlagDefineShorthand = "D"
const FlagSysPropShorthand = "S"
