package navigation

import "fmt"

// typeName returns the dynamic type name of route, for inclusion in
// diagnostic errors.
func typeName(route AnyRoute) string {
	return fmt.Sprintf("%T", route)
}
