package plugin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vk/firmgen/internal/model"
)

// rosMsgTypes maps the wire type of a module output to its rosserial
// include and C++ message type. Only scalar message types are supported;
// a module declaring anything else fails generation rather than emitting
// a publisher that will not compile.
var rosMsgTypes = map[string]struct {
	include string
	cpp     string
}{
	"std_msgs/Float32": {"std_msgs/Float32.h", "std_msgs::Float32"},
	"std_msgs/Int32":   {"std_msgs/Int32.h", "std_msgs::Int32"},
	"std_msgs/Bool":    {"std_msgs/Bool.h", "std_msgs::Bool"},
	"std_msgs/String":  {"std_msgs/String.h", "std_msgs::String"},
}

// ROS emits rosserial publishers for every module output so the device
// reports readings to an upstream ROS graph.
type ROS struct {
	modules *model.Set
}

// NewROS is the factory for the built-in "ros" plugin.
func NewROS(modules *model.Set) (Plugin, error) {
	return &ROS{modules: modules}, nil
}

// Name implements Plugin.
func (p *ROS) Name() string { return "ros" }

// publisherName builds the C++ identifier for one module output publisher.
func publisherName(moduleID, outputName string) string {
	return fmt.Sprintf("pub_%s_%s", moduleID, outputName)
}

// sortedOutputs returns a module's output names in lexical order so emitted
// source is stable.
func sortedOutputs(m *model.ResolvedModule) []string {
	names := make([]string, 0, len(m.Outputs))
	for name := range m.Outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Globals implements Plugin.
func (p *ROS) Globals() (string, error) {
	var b strings.Builder
	b.WriteString("#include <ros.h>\n")

	includes := make(map[string]struct{})
	var decls strings.Builder
	err := p.modules.Range(func(m *model.ResolvedModule) error {
		for _, name := range sortedOutputs(m) {
			port := m.Outputs[name]
			msg, ok := rosMsgTypes[port.Type]
			if !ok {
				return fmt.Errorf("output %q of module %q has unsupported message type %q", name, m.ID, port.Type)
			}
			includes[msg.include] = struct{}{}
			fmt.Fprintf(&decls, "%s %s_%s_msg;\n", msg.cpp, m.ID, name)
			fmt.Fprintf(&decls, "ros::Publisher %s(\"%s/%s\", &%s_%s_msg);\n",
				publisherName(m.ID, name), m.ID, name, m.ID, name)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	includeList := make([]string, 0, len(includes))
	for inc := range includes {
		includeList = append(includeList, inc)
	}
	sort.Strings(includeList)
	for _, inc := range includeList {
		fmt.Fprintf(&b, "#include <%s>\n", inc)
	}

	b.WriteString("\nros::NodeHandle nh;\n")
	b.WriteString(decls.String())
	return b.String(), nil
}

// Setup implements Plugin.
func (p *ROS) Setup() (string, error) {
	var b strings.Builder
	b.WriteString("nh.initNode();\n")
	_ = p.modules.Range(func(m *model.ResolvedModule) error {
		for _, name := range sortedOutputs(m) {
			fmt.Fprintf(&b, "nh.advertise(%s);\n", publisherName(m.ID, name))
		}
		return nil
	})
	return b.String(), nil
}

// Loop implements Plugin.
func (p *ROS) Loop() (string, error) {
	return "nh.spinOnce();\n", nil
}

// PioDependencies implements Plugin.
func (p *ROS) PioDependencies() []string {
	return []string{"frankjoshua/Rosserial Arduino Library"}
}

// GitDependencies implements Plugin.
func (p *ROS) GitDependencies() []string {
	return nil
}
