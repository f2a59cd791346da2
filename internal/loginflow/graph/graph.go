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

// Package graph provides the node-graph representation used by the visual
// editor. A sequence maps to a linear chain of step nodes between a START and
// a DONE node; collapsing a graph back into a sequence follows the primary
// edge out of each node and reports whether any branching was discarded.
package graph

import (
	"github.com/asgardeo/flowcomposer/internal/loginflow/model"
	"github.com/google/uuid"
)

// Node types in a flow graph.
const (
	NodeTypeStart = "START"
	NodeTypeStep  = "STEP"
	NodeTypeDone  = "DONE"
)

// Node is a single vertex in the flow graph. Step nodes carry the
// authenticator options of the authentication step they represent.
type Node struct {
	ID      string                      `json:"id"`
	Type    string                      `json:"type"`
	StepID  int                         `json:"stepId,omitempty"`
	Options []model.AuthenticatorOption `json:"options,omitempty"`
}

// Graph is the visual editor's view of an authentication sequence.
type Graph struct {
	ID          string              `json:"id"`
	Nodes       map[string]Node     `json:"nodes"`
	Edges       map[string][]string `json:"edges"`
	StartNodeID string              `json:"startNodeId"`
}

// NewGraph creates an empty graph with the given start node ID.
func NewGraph(startNodeID string) *Graph {
	return &Graph{
		ID:          uuid.New().String(),
		Nodes:       make(map[string]Node),
		Edges:       make(map[string][]string),
		StartNodeID: startNodeID,
	}
}

// AddNode adds a node to the graph.
func (g *Graph) AddNode(node Node) {
	g.Nodes[node.ID] = node
}

// AddEdge adds an edge from one node to another.
func (g *Graph) AddEdge(fromNodeID, toNodeID string) {
	if _, exists := g.Edges[fromNodeID]; !exists {
		g.Edges[fromNodeID] = []string{}
	}
	g.Edges[fromNodeID] = append(g.Edges[fromNodeID], toNodeID)
}

// BuildGraph converts a sequence into a linear flow graph: a START node, one
// STEP node per authentication step in order, and a terminal DONE node.
func BuildGraph(sequence *model.AuthenticationSequence) *Graph {
	startNode := Node{ID: uuid.New().String(), Type: NodeTypeStart}
	g := NewGraph(startNode.ID)
	g.AddNode(startNode)

	previousID := startNode.ID
	for _, step := range sequence.Steps {
		options := make([]model.AuthenticatorOption, len(step.Options))
		copy(options, step.Options)

		stepNode := Node{
			ID:      uuid.New().String(),
			Type:    NodeTypeStep,
			StepID:  step.ID,
			Options: options,
		}
		g.AddNode(stepNode)
		g.AddEdge(previousID, stepNode.ID)
		previousID = stepNode.ID
	}

	doneNode := Node{ID: uuid.New().String(), Type: NodeTypeDone}
	g.AddNode(doneNode)
	g.AddEdge(previousID, doneNode.ID)

	return g
}

// Collapse converts a graph back into an ordered list of authentication
// steps by walking the first edge out of every node starting from the START
// node. The returned flag reports whether any node had more than one outgoing
// edge, meaning branch information was discarded by the conversion.
func Collapse(g *Graph) ([]model.AuthenticationStep, bool) {
	steps := []model.AuthenticationStep{}
	lossy := false
	visited := make(map[string]bool)

	currentID := g.StartNodeID
	for currentID != "" && !visited[currentID] {
		visited[currentID] = true

		node, exists := g.Nodes[currentID]
		if !exists {
			break
		}
		if node.Type == NodeTypeDone {
			break
		}
		if node.Type == NodeTypeStep {
			options := make([]model.AuthenticatorOption, len(node.Options))
			copy(options, node.Options)
			steps = append(steps, model.AuthenticationStep{
				ID:      len(steps) + 1,
				Options: options,
			})
		}

		outgoing := g.Edges[currentID]
		if len(outgoing) > 1 {
			lossy = true
		}
		if len(outgoing) == 0 {
			break
		}
		currentID = outgoing[0]
	}

	return steps, lossy
}
