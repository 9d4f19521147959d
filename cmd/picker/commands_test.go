package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/name-picker/internal/config"
	"github.com/KirkDiggler/name-picker/internal/errors"
)

type CommandsTestSuite struct {
	suite.Suite
	dir string
	out *bytes.Buffer
	cmd *cobra.Command
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (s *CommandsTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.out = &bytes.Buffer{}
	s.cmd = &cobra.Command{}
	s.cmd.SetOut(s.out)

	settings = &config.Settings{Config: filepath.Join(s.dir, "config.json"), LogLevel: "info"}
}

func (s *CommandsTestSuite) TestSampleThenValidate() {
	s.Require().NoError(runSample(s.cmd, nil))
	s.Assert().Contains(s.out.String(), "config.json")

	s.out.Reset()
	s.Require().NoError(runValidate(s.cmd, nil))
	s.Assert().Contains(s.out.String(), "ok:")
	s.Assert().Contains(s.out.String(), "3 names, 2 groups")
}

func (s *CommandsTestSuite) TestSampleUsesExtensionForFormat() {
	path := filepath.Join(s.dir, "roster.yaml")
	s.Require().NoError(runSample(s.cmd, []string{path}))

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Assert().Contains(string(data), "names:")
}

func (s *CommandsTestSuite) TestSampleRefusesOverwrite() {
	s.Require().NoError(runSample(s.cmd, nil))

	err := runSample(s.cmd, nil)
	s.Assert().Equal(errors.CodeAlreadyExists, errors.GetCode(err))
	s.Assert().Equal(3, errors.GetCode(err).Exit())
}

func (s *CommandsTestSuite) TestValidateReportsEveryField() {
	path := filepath.Join(s.dir, "bad.json")
	s.Require().NoError(os.WriteFile(path, []byte(`{"names": [], "groups": ["A"], "personal_mode": "random"}`), 0o644))

	err := runValidate(s.cmd, []string{path})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(2, errors.GetCode(err).Exit())
	s.Assert().Contains(s.out.String(), "names: must contain at least one entry\n")
	s.Assert().Contains(s.out.String(), "personal_mode: ")
	s.Assert().Contains(s.out.String(), "egg_cases: is required\n")
}

func (s *CommandsTestSuite) TestValidateMissingFile() {
	err := runValidate(s.cmd, []string{filepath.Join(s.dir, "missing.json")})
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Empty(s.out.String())
}

func (s *CommandsTestSuite) TestParseLevel() {
	s.Assert().Equal("DEBUG", parseLevel("debug").String())
	s.Assert().Equal("WARN", parseLevel("warn").String())
	s.Assert().Equal("INFO", parseLevel("nonsense").String())
}
