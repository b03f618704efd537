package config

import "sort"

// detectExtendsCycle returns the styles participating in an extends cycle, or nil if no cycle exists.
func detectExtendsCycle(styles []Style) []string {
	graph := make(map[string]string, len(styles))
	for _, style := range styles {
		graph[style.Name] = style.Extends
	}

	visiting := make(map[string]bool, len(styles))
	visited := make(map[string]bool, len(styles))
	var stack []string

	var cycle []string
	var dfs func(string) bool
	dfs = func(node string) bool {
		visiting[node] = true
		stack = append(stack, node)

		if parent, ok := graph[node]; ok && parent != "" && !visited[parent] {
			if visiting[parent] {
				if idx := indexOf(stack, parent); idx >= 0 {
					cycle = append([]string{}, stack[idx:]...)
					cycle = append(cycle, parent)
				}
				return true
			}
			if _, declared := graph[parent]; declared && dfs(parent) {
				return true
			}
		}

		visiting[node] = false
		visited[node] = true
		stack = stack[:len(stack)-1]
		return false
	}

	names := make([]string, 0, len(graph))
	for name := range graph {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if visited[name] {
			continue
		}
		if dfs(name) {
			break
		}
	}

	return cycle
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}
