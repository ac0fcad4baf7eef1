package flags

const Verbose = `verbose`
const VerboseShort = `v`
const VerboseArgument = `verbose`
