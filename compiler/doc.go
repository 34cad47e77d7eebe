/*

Graph intermediate representation

Client program ->
	ir.Builder ->
Graph of basic blocks (ir.Graph) ->
	dump ->
Text

Instructions are owned by blocks and linked in emission order.
Def-use edges are recorded when inputs are wired,
so a Graph is consistent after every builder call.

*/
package compiler
