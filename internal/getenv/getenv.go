/* Copyright (c) 2021 David Bulkow */

// Package getenv reads environment variables under a common prefix.
package getenv

import (
	"os"
	"strconv"
	"strings"
)

type Env struct {
	prefix string
}

func NewEnv(prefix string) *Env {
	return &Env{prefix: prefix}
}

func (e *Env) varname(suffix string) string {
	if e.prefix == "" {
		return suffix
	}
	return strings.Join([]string{e.prefix, suffix}, "_")
}

func (e *Env) Get(suffix, defvalue string) string {
	env := os.Getenv(e.varname(suffix))

	if env == "" {
		return defvalue
	}

	return env
}

func (e *Env) GetInt(suffix string, defvalue int) int {
	env := os.Getenv(e.varname(suffix))

	if env == "" {
		return defvalue
	}

	v, err := strconv.Atoi(env)
	if err != nil {
		return defvalue
	}

	return v
}

func (e *Env) GetBool(suffix string, defvalue bool) bool {
	env := os.Getenv(e.varname(suffix))

	if env == "" {
		return defvalue
	}

	return strings.ToLower(env) == "true"
}
