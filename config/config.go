package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Conf struct {
	LeetcodeUrl      string `yaml:"leetcode_url"`
	LeetcodeUser     string `yaml:"leetcode_user"`
	CodeforcesUrl    string `yaml:"codeforces_url"`
	CodeforcesHandle string `yaml:"codeforces_handle"`
	OutputDir        string `yaml:"output_dir"`
	Layout           string `yaml:"layout"`
	TzOffset         string `yaml:"tz_offset"`
	InitialLimit     int    `yaml:"initial_limit"`
	LimitStep        int    `yaml:"limit_step"`
	ExpandPause      string `yaml:"expand_pause"`
	DbPath           string `yaml:"db_path"`
	WebhookUrl       string `yaml:"webhook_url"`
}

func Default() Conf {
	return Conf{
		LeetcodeUrl:      "https://leetcode.com/graphql/",
		LeetcodeUser:     "pritish__mishraa",
		CodeforcesUrl:    "https://codeforces.com/api/user.status",
		CodeforcesHandle: "pritish_1",
		OutputDir:        "src/pages",
		Layout:           "../layouts/blogLayout.astro",
		TzOffset:         "5h30m",
		InitialLimit:     10,
		LimitStep:        10,
		ExpandPause:      "2s",
	}
}

// ReadConf overlays the yaml file at yaml_path on Default.
// A missing file is not an error.
func ReadConf(yaml_path string) (Conf, error) {
	p := Default()
	buf, err := ioutil.ReadFile(yaml_path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return p, errors.Wrap(err, "read conf")
	}
	if err := yaml.Unmarshal(buf, &p); err != nil {
		return p, errors.Wrapf(err, "parse %s", yaml_path)
	}
	return p, p.Validate()
}

func (c Conf) Validate() error {
	if c.InitialLimit <= 0 {
		return errors.Errorf("initial_limit must be positive, got %d", c.InitialLimit)
	}
	if c.LimitStep <= 0 {
		return errors.Errorf("limit_step must be positive, got %d", c.LimitStep)
	}
	if c.OutputDir == "" {
		return errors.New("output_dir is empty")
	}
	if _, err := c.Offset(); err != nil {
		return err
	}
	if _, err := c.Pause(); err != nil {
		return err
	}
	return nil
}

// Pause is the wait between two fetches of the same judge.
func (c Conf) Pause() (time.Duration, error) {
	d, err := time.ParseDuration(c.ExpandPause)
	if err != nil {
		return 0, errors.Wrapf(err, "expand_pause %q", c.ExpandPause)
	}
	if d < 0 {
		return 0, errors.Errorf("expand_pause must not be negative, got %s", d)
	}
	return d, nil
}

// Offset is the target timezone offset applied to "now" and to every record.
func (c Conf) Offset() (time.Duration, error) {
	d, err := time.ParseDuration(c.TzOffset)
	if err != nil {
		return 0, errors.Wrapf(err, "tz_offset %q", c.TzOffset)
	}
	return d, nil
}

// ToAbsPath resolves ref_path against the directory of the running binary.
func ToAbsPath(ref_path string) (string, error) {
	if filepath.IsAbs(ref_path) {
		return ref_path, nil
	}
	exe_path, err := os.Executable()
	if err != nil {
		return exe_path, err
	}
	return filepath.Join(filepath.Dir(exe_path), ref_path), nil
}
