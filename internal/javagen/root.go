package javagen

import (
	"github.com/andrewkroh/gqljavagen/internal/introspection"
)

// emitRoot writes the entry-point class with the static query and mutation
// builders and their response wrappers.
func (g *Generator) emitRoot() *javaFile {
	f := newJavaFile(g.nestUnder)

	f.open("public class %s {", g.nestUnder)
	g.writeOperation(f, g.schema.QueryType(), "query", "Query", "{")
	g.writeOperation(f, g.schema.MutationType(), "mutation", "Mutation", "mutation{")

	f.line("")
	f.use("java.util.Arrays", "java.util.Collections", "java.util.HashSet", "java.util.Set")
	f.line("public static final Set<String> CUSTOM_SCALARS = Collections.unmodifiableSet(new HashSet<>(Arrays.asList(")
	f.depth += 2
	for i, name := range g.scalarNames {
		sep := ","
		if i == len(g.scalarNames)-1 {
			sep = ""
		}
		f.line("%s%s", javaString(name), sep)
	}
	f.depth -= 2
	f.line(")));")
	f.close("}")
	return f
}

func (g *Generator) writeOperation(f *javaFile, root *introspection.Type, method, prefix, opening string) {
	if root == nil {
		return
	}
	class := ClassName(root.Name)
	query := class + "Query"
	response := prefix + "Response"

	f.use(
		supportPkg+".SchemaViolationError",
		supportPkg+".TopLevelResponse",
		supportPkg+".Error",
		gsonPkg+".Gson",
		gsonPkg+".GsonBuilder",
		"java.util.List",
	)

	f.line("")
	f.open("public static %s %s(%sQueryDefinition queryDef) {", query, method, class)
	f.line("StringBuilder queryString = new StringBuilder(%s);", javaString(opening))
	f.line("%s query = new %s(queryString);", query, query)
	f.line("queryDef.define(query);")
	f.line("queryString.append('}');")
	f.line("return query;")
	f.close("}")
	f.line("")

	f.open("public static class %s {", response)
	f.line("private TopLevelResponse response;")
	f.line("private %s data;", class)
	f.line("")
	f.open("public %s(TopLevelResponse response) throws SchemaViolationError {", response)
	f.line("this.response = response;")
	f.line("this.data = response.getData() != null ? new %s(response.getData()) : null;", class)
	f.close("}")
	f.line("")
	f.open("public %s getData() {", class)
	f.line("return data;")
	f.close("}")
	f.line("")
	f.open("public List<Error> getErrors() {")
	f.line("return response.getErrors();")
	f.close("}")
	f.line("")
	f.open("public String toJson() {")
	f.line("return new Gson().toJson(response);")
	f.close("}")
	f.line("")
	f.open("public String prettyPrintJson() {")
	f.line("final Gson gson = new GsonBuilder().setPrettyPrinting().create();")
	f.line("return gson.toJson(response);")
	f.close("}")
	f.line("")
	f.open("public static %s fromJson(String json) throws SchemaViolationError {", response)
	f.line("final TopLevelResponse response = new Gson().fromJson(json, TopLevelResponse.class);")
	f.line("return new %s(response);", response)
	f.close("}")
	f.close("}")
}
