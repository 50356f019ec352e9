package lint

import "strings"

// Property is a first-level key under a compose service.
type Property struct {
	Name string
	Line int // 1-based
}

// ServiceBlock is one entry of the top-level services mapping.
type ServiceBlock struct {
	Name  string
	Props []Property
}

// ServiceBlocks keeps blocks in declaration order.
type ServiceBlocks []ServiceBlock

// Props returns the properties of the named block.
func (b ServiceBlocks) Props(name string) ([]Property, bool) {
	for _, blk := range b {
		if blk.Name == name {
			return blk.Props, true
		}
	}
	return nil, false
}

// ExtractServiceProps scans compose file text and returns the top-level
// keys of every service in the services block.
//
// The first indented key under services fixes the service indent, and the
// first deeper line inside a service fixes that service's property indent.
// Anything nested below the property indent is ignored.
func ExtractServiceProps(content string) ServiceBlocks {
	var (
		blocks        ServiceBlocks
		current       = -1
		inServices    bool
		serviceIndent = -1
		propIndent    = -1
	)

	for i, line := range strings.Split(content, "\n") {
		lineNo := i + 1
		stripped := strings.TrimLeft(line, " \t")
		indent := len(line) - len(stripped)
		stripped = strings.TrimRight(stripped, " \t\r")

		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}

		if indent == 0 {
			// a top-level key always leaves the previous block
			inServices = stripComment(stripped) == "services:"
			current = -1
			continue
		}
		if !inServices {
			continue
		}

		isKey := strings.HasSuffix(stripped, ":") && !strings.HasPrefix(stripped, "-")
		if serviceIndent < 0 && isKey {
			serviceIndent = indent
		}

		if indent == serviceIndent && isKey {
			name := strings.TrimSpace(strings.TrimSuffix(stripped, ":"))
			current = blocks.reset(name)
			propIndent = -1
			continue
		}

		if current < 0 || indent <= serviceIndent {
			continue
		}
		if propIndent < 0 {
			propIndent = indent
		}
		if indent == propIndent && strings.Contains(stripped, ":") && !strings.HasPrefix(stripped, "-") {
			name := strings.TrimSpace(stripped[:strings.Index(stripped, ":")])
			blocks[current].Props = append(blocks[current].Props, Property{Name: name, Line: lineNo})
		}
	}

	return blocks
}

// reset starts (or restarts) the named block and returns its index.
func (b *ServiceBlocks) reset(name string) int {
	for i := range *b {
		if (*b)[i].Name == name {
			(*b)[i].Props = []Property{}
			return i
		}
	}
	*b = append(*b, ServiceBlock{Name: name, Props: []Property{}})
	return len(*b) - 1
}

// stripComment drops a trailing " # comment" from a key line.
func stripComment(s string) string {
	if i := strings.Index(s, " #"); i >= 0 {
		return strings.TrimRight(s[:i], " \t")
	}
	return s
}
