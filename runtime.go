// runtime.go
//
// NewRuntime layers the standard builtin table and a prelude written in the
// language itself on top of the bare core from NewInterpreter.

package mal

import "fmt"

// prelude is evaluated form by form in Global.
const prelude = `
(def! not (fn* (a) (if a false true)))

(def! identity (fn* (x) x))
(def! inc (fn* (x) (+ x 1)))
(def! dec (fn* (x) (- x 1)))

(def! load-file
  (fn* (f)
    (eval (read-string (str "(do " (slurp f) "\nnil)")))))

(defmacro! cond
  (fn* (& xs)
    (if (> (count xs) 0)
      (list 'if (first xs)
            (if (> (count xs) 1)
              (nth xs 1)
              (throw "odd number of forms to cond"))
            (cons 'cond (rest (rest xs)))))))

(defmacro! or
  (fn* (& xs)
    (if (empty? xs)
      nil
      (if (= 1 (count xs))
        (first xs)
        (let* (v (gensym))
          ` + "`" + `(let* (~v ~(first xs))
             (if ~v ~v (or ~@(rest xs)))))))))

(defmacro! and
  (fn* (& xs)
    (if (empty? xs)
      true
      (if (= 1 (count xs))
        (first xs)
        (let* (v (gensym))
          ` + "`" + `(let* (~v ~(first xs))
             (if ~v (and ~@(rest xs)) ~v)))))))
`

// NewRuntime returns an interpreter with the standard builtins and prelude.
func NewRuntime() (*Interpreter, error) {
	ip := NewInterpreter()

	registerCoreBuiltins(ip)
	registerSeqBuiltins(ip)
	registerMapBuiltins(ip)
	registerStringBuiltins(ip)
	registerFileBuiltins(ip)
	registerTimeBuiltins(ip)
	registerMiscBuiltins(ip)

	if _, err := ip.EvalSource(prelude); err != nil {
		return nil, fmt.Errorf("loading prelude: %w", err)
	}
	return ip, nil
}
