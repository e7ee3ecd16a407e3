package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"fnmcp service configuration YAML/JSON path"`

	ListTools     *ListToolsCmd     `command:"list-tools"     description:"List all registered tools"`
	Tool          *ToolCmd          `command:"tool"           description:"Show detailed info about one tool"`
	Call          *CallCmd          `command:"call"           description:"Invoke a registered tool"`
	ListResources *ListResourcesCmd `command:"list-resources" description:"List all registered resource templates"`
	Read          *ReadCmd          `command:"read"           description:"Read a resource by URI"`
	Serve         *ServeCmd         `command:"serve"          description:"Start MCP server exposing the registered tools"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "call":
		o.Call = &CallCmd{}
	case "list-resources":
		o.ListResources = &ListResourcesCmd{}
	case "read":
		o.Read = &ReadCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
