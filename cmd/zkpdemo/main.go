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

// Command zkpdemo runs the prover and verifier in a single process
// against one of the six parameter presets, logging a round that fails
// to verify (which ends the run) or, when every round passes, the final
// impersonation-probability bound.
package main

import (
	"fmt"
	"os"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getamis/zkp-volte-patarin-nachef/config"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/key"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/params"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/prover"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/verifier"
	"github.com/getamis/zkp-volte-patarin-nachef/logger"
)

var configFile string

var cmd = &cobra.Command{
	Use:   "zkpdemo",
	Short: "Run the Volte-Patarin-Nachef identification protocol end to end",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		configFile = viper.GetString("config")

		c, err := config.ReadConfigFile(configFile)
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		return run(c)
	},
}

func init() {
	cmd.Flags().String("config", "", "path to a YAML file with preset and rounds")
}

func run(c *config.Config) error {
	l := logger.Logger()

	preset, err := params.ByName(c.Preset)
	if err != nil {
		return err
	}

	priv, err := key.Generate(preset)
	if err != nil {
		return fmt.Errorf("generating private key: %w", err)
	}
	defer priv.Release()

	pub, err := key.ComputePublicKey(priv)
	if err != nil {
		return fmt.Errorf("computing public key: %w", err)
	}

	p := prover.New(priv)
	v := verifier.New(pub)

	l.Info("starting demo", "preset", preset.Name, "rounds", c.Rounds, "d", preset.D)

	for i := uint32(0); i < c.Rounds; i++ {
		commitments, err := p.BeginRound()
		if err != nil {
			return fmt.Errorf("round %d: begin_round: %w", i, err)
		}
		q, err := v.ChooseQuestion(commitments)
		if err != nil {
			return fmt.Errorf("round %d: choose_question: %w", i, err)
		}
		ans, err := p.GetAnswer(q)
		if err != nil {
			return fmt.Errorf("round %d: get_answer: %w", i, err)
		}
		ok, err := v.Verify(ans)
		if err != nil {
			return fmt.Errorf("round %d: verify: %w", i, err)
		}
		if !ok {
			l.Error("round failed to verify", "round", i, "q", q)
			return fmt.Errorf("round %d did not verify", i)
		}
	}

	l.Info("demo complete",
		"successful_rounds", v.SuccessfulRounds(),
		"impersonation_probability", v.ImpersonationProbability(),
	)
	return nil
}

func main() {
	logger.SetLogger(log.New())
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
