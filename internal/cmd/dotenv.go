package cmd

import "github.com/miix-automations/website/internal/config"

var loadDotEnv = config.LoadDotEnv
