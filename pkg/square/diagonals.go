// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package square

// Diagonal identifies one of the 15 NE-SW diagonals of the board, indexed
// 0..15 via Square.Diagonal. Squares on the same diagonal share a value.
type Diagonal int

// AntiDiagonal identifies one of the 15 NW-SE anti-diagonals of the
// board, indexed 0..15 via Square.AntiDiagonal. Squares on the same
// anti-diagonal share a value.
type AntiDiagonal = Diagonal
