// Copyright 2025 go-paxsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dataset

import (
	"math/rand/v2"

	"github.com/ajroetker/go-paxsort/passenger"
)

// MaxCabinNumber is the largest cabin number Generate produces.
const MaxCabinNumber = 9999

var (
	firstNames = []string{
		"Александр", "Анна", "Борис", "Вера", "Григорий", "Дарья", "Евгений",
		"Елена", "Иван", "Ирина", "Константин", "Мария", "Николай", "Ольга",
		"Павел", "Светлана", "Сергей", "Татьяна", "Фёдор", "Юлия",
	}
	patronymics = []string{
		"Алексеевич", "Андреевна", "Борисович", "Викторовна", "Дмитриевич",
		"Ивановна", "Михайлович", "Николаевна", "Петрович", "Сергеевна",
	}
	lastNames = []string{
		"Алексеев", "Белов", "Васильев", "Голубев", "Егоров", "Зайцев",
		"Иванов", "Козлов", "Лебедев", "Морозов", "Новиков", "Орлов",
		"Попов", "Соколов", "Титов", "Фролов", "Чернов", "Широков",
	}
	cabinClasses = []string{"Люкс", "1", "2", "3"}
	ports        = []string{
		"Астрахань", "Волгоград", "Казань", "Кострома", "Нижний Новгород",
		"Самара", "Саратов", "Тверь", "Ульяновск", "Ярославль",
	}
)

// Generate returns n synthetic passengers. The same seed always yields the
// same records in the same order. No field contains Delimiter.
func Generate(n int, seed uint64) []passenger.Passenger {
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	records := make([]passenger.Passenger, n)
	for i := range records {
		records[i] = passenger.Passenger{
			FullName: pick(rng, lastNames) + " " + pick(rng, firstNames) + " " +
				pick(rng, patronymics),
			CabinNumber:     1 + rng.IntN(MaxCabinNumber),
			CabinClass:      pick(rng, cabinClasses),
			DestinationPort: pick(rng, ports),
		}
	}
	return records
}

func pick(rng *rand.Rand, from []string) string {
	return from[rng.IntN(len(from))]
}
