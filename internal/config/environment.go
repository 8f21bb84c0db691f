package config

import (
	"strings"
)

type Environment int32

const (
	UNDEFINED_ENV Environment = iota
	LOCAL_ENV
	DEV_ENV
	UAT_ENV
	PROD_ENV
)

var environmentNames = map[Environment]string{
	LOCAL_ENV: "local",
	DEV_ENV:   "dev",
	UAT_ENV:   "uat",
	PROD_ENV:  "prod",
}

var environmentAliases = map[string]Environment{
	"local":       LOCAL_ENV,
	"dev":         DEV_ENV,
	"development": DEV_ENV,
	"uat":         UAT_ENV,
	"staging":     UAT_ENV,
	"prod":        PROD_ENV,
	"production":  PROD_ENV,
}

func StringToEnvironment(s string) Environment {
	return environmentAliases[strings.ToLower(strings.TrimSpace(s))]
}

func (e Environment) String() string {
	if name, ok := environmentNames[e]; ok {
		return name
	}
	return "undefined"
}

// DebugAllowed is false in production, where pprof stays off and the default log level is info.
func (e Environment) DebugAllowed() bool {
	return e != PROD_ENV
}
