// Package module implements the declarative-module calling convention: the
// orchestration engine execs the binary with the path to a JSON arguments
// file, reads a JSON result from stdout, and treats a non-zero exit as
// failure. One reconciliation per invocation.
package module

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/Pearson-Advance/configuration/aws/config"
	"github.com/Pearson-Advance/configuration/aws/helper/awsec2"
	"github.com/Pearson-Advance/configuration/aws/routetable"
	"github.com/Pearson-Advance/configuration/aws/util"
	"github.com/Pearson-Advance/configuration/common"
)

const (
	StatePresent = "present"
	StateAbsent  = "absent"
)

// Params are the arguments supplied by the engine.
type Params struct {
	Name   string                    `json:"name"`
	State  string                    `json:"state"`
	VpcId  string                    `json:"vpc_id"`
	Routes []routetable.DesiredRoute `json:"routes"`
	Tags   []routetable.TagSpec      `json:"tags"`

	Region        string `json:"region"`
	Profile       string `json:"profile"`
	AccessKey     string `json:"aws_access_key"`
	SecretKey     string `json:"aws_secret_key"`
	SecurityToken string `json:"security_token"`

	CheckMode bool `json:"_ansible_check_mode"`
}

// FailureResponse is what the engine receives when the run aborts.
type FailureResponse struct {
	Failed bool   `json:"failed"`
	Msg    string `json:"msg"`
}

// ReadParams loads the arguments from the file named by the first
// positional argument, or from stdin when the engine pipes them instead.
func ReadParams(args []string, stdin io.Reader) (*Params, error) {
	var raw []byte
	var err error

	if len(args) > 0 {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(stdin)
	}

	if err != nil {
		return nil, err
	}

	params := &Params{}

	if err := json.Unmarshal(raw, params); err != nil {
		return nil, err
	}

	return params, nil
}

// Validate applies defaults and checks the parameter contract before any
// provider call is made.
func (p *Params) Validate() error {
	if p.State == "" {
		p.State = StatePresent
	}

	if !util.StrSliceContains([]string{StatePresent, StateAbsent}, p.State) {
		return errors.New(paramErrorMsg["invalid_state"])
	}

	if p.Name == "" {
		return errors.New(paramErrorMsg["missing_name"])
	}

	if p.VpcId == "" {
		return errors.New(paramErrorMsg["missing_vpc_id"])
	}

	if p.State == StatePresent && len(p.Routes) == 0 {
		return errors.New(paramErrorMsg["missing_routes"])
	}

	return nil
}

// Config resolves the run configuration from the parameters.
func (p *Params) Config() *config.Config {
	return &config.Config{
		AuthInfo: common.AuthInfo{
			Region:       p.Region,
			Profile:      p.Profile,
			AccessKey:    p.AccessKey,
			SecretKey:    p.SecretKey,
			SessionToken: p.SecurityToken,
		},
		CheckMode: p.CheckMode,
	}
}

// Run performs one reconciliation against the real provider.
func Run(ctx context.Context, p *Params) (*routetable.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	c, err := p.Config().EC2Client(ctx)

	if err != nil {
		return nil, err
	}

	return RunWithClient(ctx, p, c.EC2())
}

// RunWithClient is the seam Run goes through once a client exists; tests
// drive it with a fake API.
func RunWithClient(ctx context.Context, p *Params, api awsec2.API) (*routetable.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	reconciler := routetable.NewReconciler(api, routetable.Opts{
		VpcId:     p.VpcId,
		Name:      p.Name,
		Routes:    p.Routes,
		Tags:      p.Tags,
		CheckMode: p.CheckMode,
	})

	if p.State == StateAbsent {
		return reconciler.EnsureAbsent(ctx)
	}

	return reconciler.EnsurePresent(ctx)
}

// WriteResult emits the success payload on the engine's result channel.
func WriteResult(w io.Writer, result *routetable.Result) error {
	return json.NewEncoder(w).Encode(result)
}

// WriteFailure emits the structured failure payload. Encoding errors are
// swallowed: there is nothing left to report them to.
func WriteFailure(w io.Writer, err error) {
	_ = json.NewEncoder(w).Encode(FailureResponse{Failed: true, Msg: err.Error()})
}
