// Package netlist parses SPICE-style text netlists into component
// descriptors. Only the DC element set is recognized: resistors (R),
// voltage sources (V) and current sources (I).
package netlist

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"dcsim/pkg/device"
)

type AnalysisType int

const (
	AnalysisOP AnalysisType = iota
	AnalysisDC
)

type NetlistData struct {
	Elements []Element      // Circuit elements
	Nodes    map[string]int // Node name and first-seen order
	Analysis AnalysisType   // Analysis type
	DCParam  struct {
		Source    string  // Swept voltage source
		Start     float64 // Start value
		Stop      float64 // Stop value
		Increment float64 // Step size
	}
	Title string // Circuit title
}

// Element is one component descriptor: identifier, ordered terminal pair
// and value. The terminal order fixes the reference direction for voltage
// drop and current.
type Element struct {
	Type  string   // Part type (R, V, I)
	Name  string   // Part name
	Nodes []string // Node names
	Value float64  // Part value
}

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

func Parse(input string) (*NetlistData, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	netlistData := &NetlistData{
		Nodes: make(map[string]int),
	}

	// Title or comment
	if scanner.Scan() {
		netlistData.Title = strings.TrimPrefix(scanner.Text(), "*")
		netlistData.Title = strings.TrimSpace(netlistData.Title)
	}

	var currentLine string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			if currentLine != "" {
				if err := parseLine(netlistData, currentLine); err != nil {
					return nil, err
				}
				currentLine = ""
			}
			continue
		}

		// Inline comment
		if idx := strings.Index(line, "*"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
			if len(line) == 0 {
				continue
			}
		}

		// Line continuation
		if strings.HasPrefix(line, "+") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "+"))
			if currentLine != "" {
				currentLine += " " + line
			}
			continue
		}

		if currentLine != "" {
			if err := parseLine(netlistData, currentLine); err != nil {
				return nil, err
			}
		}
		currentLine = line
	}

	if currentLine != "" {
		if err := parseLine(netlistData, currentLine); err != nil {
			return nil, err
		}
	}

	return netlistData, nil
}

func parseLine(netlistData *NetlistData, line string) error {
	line = regexp.MustCompile(`\s+`).ReplaceAllString(line, " ")

	if strings.HasPrefix(line, ".") {
		return parseDotOperator(netlistData, line)
	}

	element, err := parseElement(line)
	if err != nil {
		return err
	}

	netlistData.Elements = append(netlistData.Elements, *element)
	for _, node := range element.Nodes {
		if _, exists := netlistData.Nodes[node]; !exists {
			netlistData.Nodes[node] = len(netlistData.Nodes)
		}
	}
	return nil
}

// Parse .op, .dc, .end
func parseDotOperator(netlistData *NetlistData, line string) error {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return fmt.Errorf("invalid analysis command")
	}

	switch strings.ToLower(fields[0]) {
	case ".op":
		netlistData.Analysis = AnalysisOP

	case ".dc":
		netlistData.Analysis = AnalysisDC
		if len(fields) < 5 {
			return fmt.Errorf("insufficient .dc parameters: need source, start, stop and increment")
		}

		start, err := ParseValue(fields[2])
		if err != nil {
			return fmt.Errorf("invalid .dc start value: %v", err)
		}
		stop, err := ParseValue(fields[3])
		if err != nil {
			return fmt.Errorf("invalid .dc stop value: %v", err)
		}
		increment, err := ParseValue(fields[4])
		if err != nil {
			return fmt.Errorf("invalid .dc increment: %v", err)
		}

		netlistData.DCParam.Source = fields[1]
		netlistData.DCParam.Start = start
		netlistData.DCParam.Stop = stop
		netlistData.DCParam.Increment = increment

	case ".end":
		// End of netlist

	default:
		return fmt.Errorf("unsupported command: %s", fields[0])
	}

	return nil
}

func parseElement(line string) (*Element, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, fmt.Errorf("invalid element format: %s", line)
	}

	elem := &Element{
		Name:  fields[0],
		Type:  strings.ToUpper(string(fields[0][0])),
		Nodes: fields[1:3],
	}

	switch elem.Type {
	case "R", "V", "I":
		// Optional "DC" token before the value, e.g. "V1 1 0 DC 10"
		valueStr := fields[3]
		if strings.EqualFold(valueStr, "dc") {
			if len(fields) < 5 {
				return nil, fmt.Errorf("%s: missing DC value", elem.Name)
			}
			valueStr = fields[4]
		}

		value, err := ParseValue(valueStr)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", elem.Name, err)
		}
		elem.Value = value
		return elem, nil

	default:
		return nil, fmt.Errorf("unsupported element type: %s", elem.Type)
	}
}

// ParseValue converts a numeric token with an optional SI suffix.
func ParseValue(val string) (float64, error) {
	re := regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGMKkmunpf])?[A-Za-z]*$`)
	matches := re.FindStringSubmatch(strings.TrimSpace(val))

	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	if len(matches) > 2 && matches[2] != "" {
		if multiplier, ok := unitMap[matches[2]]; ok {
			num *= multiplier
		}
	}

	return num, nil
}

// CreateDevice instantiates the device for one element descriptor.
func CreateDevice(elem Element) (device.Device, error) {
	switch elem.Type {
	case "R":
		return device.NewResistor(elem.Name, elem.Nodes, elem.Value), nil

	case "V":
		return device.NewDCVoltageSource(elem.Name, elem.Nodes, elem.Value), nil

	case "I":
		return device.NewDCCurrentSource(elem.Name, elem.Nodes, elem.Value), nil

	default:
		return nil, fmt.Errorf("unsupported device type: %s", elem.Type)
	}
}
