package handlers

import (
	"github.com/salesboard/salesboard/internal/config"
	"github.com/salesboard/salesboard/internal/dashboard"
)

var (
	salesLoader dashboard.Loader
	cfg         config.Config
	version     = "dev"
)

func SetLoader(l dashboard.Loader) {
	salesLoader = l
}

func SetConfig(c config.Config) {
	cfg = c
}

func SetVersion(v string) {
	version = v
}
