// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config reads the YAML configuration for the zkpdemo CLI: the
// chosen parameter preset and how many rounds to run. It deliberately
// holds no key material — private and public keys are generated or
// imported at runtime, never read from this file.
package config

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/params"
)

// Config is the demo CLI's run configuration.
type Config struct {
	Preset string `yaml:"preset"`
	Rounds uint32 `yaml:"rounds"`
}

// ReadConfigFile loads and validates a Config from a YAML file.
func ReadConfigFile(filePath string) (*Config, error) {
	c := &Config{}
	yamlFile, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(yamlFile, c); err != nil {
		return nil, err
	}
	if _, err := params.ByName(c.Preset); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if c.Rounds == 0 {
		return nil, fmt.Errorf("config: rounds must be positive")
	}
	return c, nil
}

// WriteYamlFile marshals yamlData and writes it to filePath, matching
// the layout ReadConfigFile expects to read back.
func WriteYamlFile(yamlData interface{}, filePath string) error {
	data, err := yaml.Marshal(yamlData)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filePath, data, 0644)
}
