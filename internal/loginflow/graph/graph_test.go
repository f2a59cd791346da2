/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/flowcomposer/internal/loginflow/model"
)

type GraphTestSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphTestSuite))
}

func twoStepSequence() *model.AuthenticationSequence {
	return &model.AuthenticationSequence{
		Type: model.SequenceTypeUserDefined,
		Steps: []model.AuthenticationStep{
			{ID: 1, Options: []model.AuthenticatorOption{{Authenticator: "BasicAuthenticator", IdP: "LOCAL"}}},
			{ID: 2, Options: []model.AuthenticatorOption{{Authenticator: "totp"}}},
		},
	}
}

func (suite *GraphTestSuite) TestBuildGraphIsLinear() {
	g := BuildGraph(twoStepSequence())

	// START, two steps, DONE.
	assert.Len(suite.T(), g.Nodes, 4)

	startNode, exists := g.Nodes[g.StartNodeID]
	assert.True(suite.T(), exists)
	assert.Equal(suite.T(), NodeTypeStart, startNode.Type)

	currentID := g.StartNodeID
	visitedTypes := []string{}
	for {
		outgoing := g.Edges[currentID]
		if len(outgoing) == 0 {
			break
		}
		assert.Len(suite.T(), outgoing, 1)
		currentID = outgoing[0]
		visitedTypes = append(visitedTypes, g.Nodes[currentID].Type)
	}
	assert.Equal(suite.T(), []string{NodeTypeStep, NodeTypeStep, NodeTypeDone}, visitedTypes)
}

func (suite *GraphTestSuite) TestBuildGraphCopiesOptions() {
	sequence := twoStepSequence()
	g := BuildGraph(sequence)

	for _, node := range g.Nodes {
		if node.Type == NodeTypeStep && node.StepID == 1 {
			node.Options[0].Authenticator = "changed"
		}
	}

	assert.Equal(suite.T(), "BasicAuthenticator", sequence.Steps[0].Options[0].Authenticator)
}

func (suite *GraphTestSuite) TestCollapseRoundTrip() {
	sequence := twoStepSequence()
	g := BuildGraph(sequence)

	steps, lossy := Collapse(g)

	assert.False(suite.T(), lossy)
	assert.Equal(suite.T(), sequence.Steps, steps)
}

func (suite *GraphTestSuite) TestCollapseDetectsBranching() {
	g := BuildGraph(twoStepSequence())

	// Add a second edge out of the start node to simulate a branch added in
	// the visual editor.
	extraNode := Node{ID: "extra", Type: NodeTypeStep, StepID: 99,
		Options: []model.AuthenticatorOption{{Authenticator: "magic-link"}}}
	g.AddNode(extraNode)
	g.AddEdge(g.StartNodeID, extraNode.ID)

	steps, lossy := Collapse(g)

	assert.True(suite.T(), lossy)
	// The primary path is preserved.
	assert.Len(suite.T(), steps, 2)
	assert.Equal(suite.T(), "BasicAuthenticator", steps[0].Options[0].Authenticator)
}

func (suite *GraphTestSuite) TestCollapseRenumbersSteps() {
	g := BuildGraph(&model.AuthenticationSequence{
		Steps: []model.AuthenticationStep{
			{ID: 4, Options: []model.AuthenticatorOption{{Authenticator: "totp"}}},
			{ID: 9, Options: []model.AuthenticatorOption{{Authenticator: "sms-otp"}}},
		},
	})

	steps, _ := Collapse(g)

	assert.Equal(suite.T(), 1, steps[0].ID)
	assert.Equal(suite.T(), 2, steps[1].ID)
}

func (suite *GraphTestSuite) TestCollapseEmptyGraph() {
	g := NewGraph("missing")

	steps, lossy := Collapse(g)

	assert.Empty(suite.T(), steps)
	assert.False(suite.T(), lossy)
}

func (suite *GraphTestSuite) TestCollapseTerminatesOnCycle() {
	g := NewGraph("a")
	g.AddNode(Node{ID: "a", Type: NodeTypeStart})
	g.AddNode(Node{ID: "b", Type: NodeTypeStep, StepID: 1,
		Options: []model.AuthenticatorOption{{Authenticator: "totp"}}})
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	steps, _ := Collapse(g)

	assert.Len(suite.T(), steps, 1)
}
