package consts

const (
	ParamName = "name"
)
